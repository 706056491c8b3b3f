package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"github.com/shopspring/decimal"
)

// RegisterBudgetRoutes registers the routes for the budget singleton
// with the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudget)
	r.GET("", GetBudget)
	r.PATCH("", UpdateBudget)
}

func OptionsBudget(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Food decimal.Decimal `json:"food" example:"315000"` // Planned weekly food spending
	Misc decimal.Decimal `json:"misc" example:"100000"` // Planned weekly misc spending
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Food: editable.Food,
		Misc: editable.Misc,
	}
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
}

type BudgetResponse struct {
	Data  *Budget `json:"data"` // Data for the budget
	Error *string `json:"error" example:"budget amounts must not be negative"`
}

func newBudget(model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Food: model.Food,
			Misc: model.Misc,
		},
	}
}

// GetBudget returns the budget, creating it with defaults on first read.
func GetBudget(c *gin.Context) {
	budget, err := models.CurrentBudget(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	data := newBudget(budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

func UpdateBudget(c *gin.Context) {
	budget, err := models.CurrentBudget(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	var data BudgetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	err = models.DB.Model(&budget).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	r := newBudget(budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &r})
}
