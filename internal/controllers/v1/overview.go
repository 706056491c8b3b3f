package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/engine"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
)

// RegisterOverviewRoutes registers the routes for the dashboard rollup
// with the RouterGroup that is passed.
func RegisterOverviewRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetOverview)
}

type OverviewResponse struct {
	Data   *engine.OverviewResult `json:"data"`
	Filter *types.Filter          `json:"filter"` // The period the rollup covers
	Error  *string                `json:"error" example:"the period filter is invalid"`
}

// GetOverview computes the dashboard rollup for the requested period,
// defaulting to the current week.
func GetOverview(c *gin.Context) {
	var query PeriodQuery
	_ = c.Bind(&query)

	now := time.Now()

	filter, err := query.filter(now)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, OverviewResponse{Error: &s})
		return
	}

	var logs []models.LogEntry
	if err := models.DB.Find(&logs).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), OverviewResponse{Error: &s})
		return
	}

	var savings []models.SavingsTransaction
	if err := models.DB.Find(&savings).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), OverviewResponse{Error: &s})
		return
	}

	var debts []models.Debt
	if err := models.DB.Preload("Transactions").Find(&debts).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), OverviewResponse{Error: &s})
		return
	}

	budget, err := models.CurrentBudget(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OverviewResponse{Error: &s})
		return
	}

	result := engine.Overview(engine.OverviewInput{
		Now:     now,
		Filter:  filter,
		Logs:    logs,
		Savings: savings,
		Debts:   debts,
		Budget:  budget,
	})

	c.JSON(http.StatusOK, OverviewResponse{Data: &result, Filter: &filter})
}
