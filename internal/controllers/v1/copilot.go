package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/engine"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

// RegisterCopilotRoutes registers the routes for the purchase advisory
// with the RouterGroup that is passed.
func RegisterCopilotRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", CreatePurchaseAnalysis)
}

type PurchaseAnalysisResponse struct {
	Data  *engine.PurchaseAnalysis `json:"data"`
	Error *string                  `json:"error" example:"the purchase price must be positive"`
}

// CreatePurchaseAnalysis scores a purchase scenario against the current
// finances. Nothing is persisted.
func CreatePurchaseAnalysis(c *gin.Context) {
	var scenario engine.PurchaseScenario

	err := httputil.BindData(c, &scenario)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseAnalysisResponse{Error: &s})
		return
	}

	if scenario.Name == "" {
		s := errPurchaseNameNotSet.Error()
		c.JSON(http.StatusBadRequest, PurchaseAnalysisResponse{Error: &s})
		return
	}

	if !scenario.Price.IsPositive() {
		s := errPurchasePriceInvalid.Error()
		c.JSON(http.StatusBadRequest, PurchaseAnalysisResponse{Error: &s})
		return
	}

	now := time.Now()

	var logs []models.LogEntry
	if err := models.DB.Find(&logs).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseAnalysisResponse{Error: &s})
		return
	}

	var savings []models.SavingsTransaction
	if err := models.DB.Find(&savings).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseAnalysisResponse{Error: &s})
		return
	}

	var debts []models.Debt
	if err := models.DB.Preload("Transactions").Find(&debts).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseAnalysisResponse{Error: &s})
		return
	}

	budget, err := models.CurrentBudget(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseAnalysisResponse{Error: &s})
		return
	}

	year, week := types.WeekOf(now)
	overview := engine.Overview(engine.OverviewInput{
		Now:     now,
		Filter:  types.Filter{Type: types.FilterWeek, Year: year, Week: week},
		Logs:    logs,
		Savings: savings,
		Debts:   debts,
		Budget:  budget,
	})

	// Only a positive financial status counts as disposable cash
	disposable := overview.FinancialStatus
	if disposable.IsNegative() {
		disposable = decimal.Zero
	}

	analysis := engine.Analyze(scenario, disposable, overview.TotalDebt, overview.MonthlyIncomeEstimate)
	c.JSON(http.StatusOK, PurchaseAnalysisResponse{Data: &analysis})
}
