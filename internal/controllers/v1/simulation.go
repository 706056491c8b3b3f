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

// RegisterSimulationRoutes registers the routes for cash-flow
// simulations with the RouterGroup that is passed.
func RegisterSimulationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", CreateSimulation)
}

// SimulationEditable is a what-if scenario for a target date.
type SimulationEditable struct {
	TargetDate time.Time         `json:"targetDate" example:"2025-12-31T00:00:00Z"`
	Incomes    []engine.LineItem `json:"incomes"`
	Expenses   []engine.LineItem `json:"expenses"`
}

type SimulationResponse struct {
	Data  *engine.Simulation `json:"data"`
	Error *string            `json:"error" example:"the targetDate parameter must be set"`
}

// CreateSimulation projects the balance at the target date against the
// live debt set. Nothing is persisted.
func CreateSimulation(c *gin.Context) {
	var editable SimulationEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{Error: &s})
		return
	}

	if editable.TargetDate.IsZero() {
		s := errTargetDateNotSet.Error()
		c.JSON(http.StatusBadRequest, SimulationResponse{Error: &s})
		return
	}

	now := time.Now()
	if types.DaysBetween(now, editable.TargetDate) < 0 {
		s := errTargetDateInPast.Error()
		c.JSON(http.StatusBadRequest, SimulationResponse{Error: &s})
		return
	}

	var debts []models.Debt
	err = models.DB.Find(&debts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{Error: &s})
		return
	}

	result := engine.Simulate(engine.SimulationInput{
		Now:        now,
		TargetDate: editable.TargetDate,
		Incomes:    editable.Incomes,
		Expenses:   editable.Expenses,
		Debts:      debts,
	})

	c.JSON(http.StatusOK, SimulationResponse{Data: &result})
}
