package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/engine"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// RegisterStrategyRoutes registers the routes for strategies with
// the RouterGroup that is passed.
func RegisterStrategyRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsStrategyList)
		r.GET("", GetStrategies)
		r.POST("", CreateStrategies)
	}

	// Strategy with ID
	{
		r.OPTIONS("/:id", OptionsStrategyDetail)
		r.GET("/:id", GetStrategy)
		r.PATCH("/:id", UpdateStrategy)
		r.DELETE("/:id", DeleteStrategy)
	}

	// Plan evaluation
	{
		r.OPTIONS("/:id/plan", httputil.OptionsGet)
		r.GET("/:id/plan", GetStrategyPlan)
	}
}

func OptionsStrategyList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

func OptionsStrategyDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Strategy{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

func CreateStrategies(c *gin.Context) {
	var editables []StrategyEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StrategyCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := StrategyCreateResponse{}

	for _, editable := range editables {
		strategy := editable.model()

		err = models.DB.Create(&strategy).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newStrategy(c, strategy)
		r.Data = append(r.Data, StrategyResponse{Data: &data})
	}

	c.JSON(status, r)
}

func GetStrategies(c *gin.Context) {
	var filter StrategyQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Preload("Goals").
		Order("start_date DESC")

	q = nameFilter(q, setFields, filter.Name)
	q = searchFilter(models.DB, q, filter.Search, "name")

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 strategies and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var strategies []models.Strategy
	err := q.Find(&strategies).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StrategyListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StrategyListResponse{Error: &s})
		return
	}

	data := make([]Strategy, 0, len(strategies))
	for _, strategy := range strategies {
		data = append(data, newStrategy(c, strategy))
	}

	c.JSON(http.StatusOK, StrategyListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

func GetStrategy(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StrategyResponse{Error: &s})
		return
	}

	var strategy models.Strategy
	err = models.DB.Preload("Goals").First(&strategy, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StrategyResponse{Error: &s})
		return
	}

	data := newStrategy(c, strategy)
	c.JSON(http.StatusOK, StrategyResponse{Data: &data})
}

func UpdateStrategy(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StrategyResponse{Error: &s})
		return
	}

	var strategy models.Strategy
	err = models.DB.Preload("Goals").First(&strategy, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StrategyResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, StrategyEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StrategyResponse{Error: &s})
		return
	}

	var data StrategyEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StrategyResponse{Error: &s})
		return
	}

	goalsSet := false
	fields := make([]any, 0, len(updateFields))
	for _, field := range updateFields {
		if field == "Goals" {
			goalsSet = true
			continue
		}
		fields = append(fields, field)
	}
	updateFields = fields

	// Goals are replaced wholesale when the body sets them
	if goalsSet {
		err = models.DB.Where("strategy_id = ?", strategy.ID).Delete(&models.StrategyGoal{}).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), StrategyResponse{Error: &s})
			return
		}

		goals := make([]models.StrategyGoal, 0, len(data.Goals))
		for _, goal := range data.Goals {
			g := goal.model()
			g.StrategyID = strategy.ID
			goals = append(goals, g)
		}

		if len(goals) > 0 {
			err = models.DB.Create(&goals).Error
			if err != nil {
				s := err.Error()
				c.JSON(status(err), StrategyResponse{Error: &s})
				return
			}
		}

		strategy.Goals = goals
	}

	if len(updateFields) > 0 {
		update := data.model()
		update.Goals = nil

		err = models.DB.Model(&strategy).Select("", updateFields...).Updates(update).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), StrategyResponse{Error: &s})
			return
		}
	}

	r := newStrategy(c, strategy)
	c.JSON(http.StatusOK, StrategyResponse{Data: &r})
}

func DeleteStrategy(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var strategy models.Strategy
	err = models.DB.First(&strategy, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&strategy).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// GetStrategyPlan evaluates the strategy against the live debt set. The
// seed balance comes from the balance query parameter and falls back to
// the savings balance.
func GetStrategyPlan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StrategyPlanResponse{Error: &s})
		return
	}

	var strategy models.Strategy
	err = models.DB.Preload("Goals").First(&strategy, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StrategyPlanResponse{Error: &s})
		return
	}

	var query StrategyPlanQuery
	_ = c.Bind(&query)

	var seed decimal.Decimal
	if query.Balance != "" {
		seed, err = decimal.NewFromString(query.Balance)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, StrategyPlanResponse{Error: &s})
			return
		}
	} else {
		var history []models.SavingsTransaction
		err = models.DB.Find(&history).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), StrategyPlanResponse{Error: &s})
			return
		}
		seed = engine.SavingsBalance(history)
	}

	var debts []models.Debt
	err = models.DB.Find(&debts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StrategyPlanResponse{Error: &s})
		return
	}

	weeks := engine.Plan(strategy, debts, seed)

	plan := StrategyPlan{
		Strategy: newStrategy(c, strategy),
		Seed:     seed,
		Weeks:    weeks,
	}

	if progress, ok := engine.Progress(weeks, strategy.Goals, seed); ok {
		plan.Progress = &progress
	}

	c.JSON(http.StatusOK, StrategyPlanResponse{Data: &plan})
}
