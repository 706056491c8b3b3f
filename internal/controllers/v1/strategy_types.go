package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/engine"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"github.com/shopspring/decimal"
)

// StrategyGoalEditable represents all user configurable parameters of a goal
type StrategyGoalEditable struct {
	Name   string          `json:"name" example:"Emergency fund" default:""`
	Amount decimal.Decimal `json:"amount" example:"5000000"` // Must be positive
}

func (editable StrategyGoalEditable) model() models.StrategyGoal {
	return models.StrategyGoal{
		Name:   editable.Name,
		Amount: editable.Amount,
	}
}

// StrategyEditable represents all user configurable parameters
type StrategyEditable struct {
	Name         string                 `json:"name" example:"Tet savings push" default:""`
	StartDate    time.Time              `json:"startDate" example:"2025-12-01T00:00:00Z"`
	EndDate      time.Time              `json:"endDate" example:"2026-01-26T00:00:00Z"` // Must be after StartDate
	WeeklyIncome decimal.Decimal        `json:"weeklyIncome" example:"2000000"`
	WeeklyFood   decimal.Decimal        `json:"weeklyFood" example:"315000"`
	WeeklyMisc   decimal.Decimal        `json:"weeklyMisc" example:"100000"`
	Goals        []StrategyGoalEditable `json:"goals"`
}

func (editable StrategyEditable) model() models.Strategy {
	strategy := models.Strategy{
		Name:         editable.Name,
		StartDate:    editable.StartDate,
		EndDate:      editable.EndDate,
		WeeklyIncome: editable.WeeklyIncome,
		WeeklyFood:   editable.WeeklyFood,
		WeeklyMisc:   editable.WeeklyMisc,
	}

	for _, goal := range editable.Goals {
		strategy.Goals = append(strategy.Goals, goal.model())
	}

	return strategy
}

type StrategyLinks struct {
	Self string `json:"self" example:"https://example.com/v1/strategies/7e52017c-bbd4-4e1c-8b26-75b2a348e2d7"`
	Plan string `json:"plan" example:"https://example.com/v1/strategies/7e52017c-bbd4-4e1c-8b26-75b2a348e2d7/plan"`
}

type StrategyGoal struct {
	models.DefaultModel
	StrategyGoalEditable
}

type Strategy struct {
	models.DefaultModel
	StrategyEditable
	Links StrategyLinks `json:"links"`

	// These fields are computed
	Goals []StrategyGoal `json:"goals"`
}

func newStrategy(c *gin.Context, model models.Strategy) Strategy {
	strategy := Strategy{
		DefaultModel: model.DefaultModel,
		StrategyEditable: StrategyEditable{
			Name:         model.Name,
			StartDate:    model.StartDate,
			EndDate:      model.EndDate,
			WeeklyIncome: model.WeeklyIncome,
			WeeklyFood:   model.WeeklyFood,
			WeeklyMisc:   model.WeeklyMisc,
		},
		Links: StrategyLinks{
			Self: fmt.Sprintf("%s/strategies/%s", httputil.RequestPathV1(c), model.ID),
			Plan: fmt.Sprintf("%s/strategies/%s/plan", httputil.RequestPathV1(c), model.ID),
		},
		Goals: make([]StrategyGoal, 0, len(model.Goals)),
	}

	for _, goal := range model.Goals {
		strategy.Goals = append(strategy.Goals, StrategyGoal{
			DefaultModel: goal.DefaultModel,
			StrategyGoalEditable: StrategyGoalEditable{
				Name:   goal.Name,
				Amount: goal.Amount,
			},
		})
	}

	return strategy
}

type StrategyListResponse struct {
	Data       []Strategy  `json:"data"` // List of strategies
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"`
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type StrategyCreateResponse struct {
	Data  []StrategyResponse `json:"data"` // The created strategies or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"`
}

func (r *StrategyCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, StrategyResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type StrategyResponse struct {
	Data  *Strategy `json:"data"` // Data for the strategy
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type StrategyQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Search string `form:"search" filterField:"false"` // Search for this text in the name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first strategy returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of strategies to return. Defaults to 50.
}

// StrategyPlanQuery configures the plan evaluation.
type StrategyPlanQuery struct {
	Balance string `form:"balance"` // Seed balance. Defaults to the savings balance.
}

// StrategyPlanResponse is the projected plan for a strategy.
type StrategyPlanResponse struct {
	Data  *StrategyPlan `json:"data"`
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type StrategyPlan struct {
	Strategy Strategy            `json:"strategy"`
	Seed     decimal.Decimal     `json:"seed"`     // The balance the projection starts from
	Weeks    []engine.WeekRecord `json:"weeks"`    // Week-by-week projection
	Progress *decimal.Decimal    `json:"progress"` // Goal completion percent, null without goals
}
