package models_test

import (
	"time"

	"github.com/pocketplan/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestStrategyCreate() {
	strategy := suite.createTestStrategy(models.Strategy{
		Name:         "  December push  ",
		StartDate:    time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 12, 29, 12, 0, 0, 0, time.UTC),
		WeeklyIncome: decimal.NewFromInt(1000000),
		Goals: []models.StrategyGoal{
			{Name: "Emergency fund", Amount: decimal.NewFromInt(2000000)},
		},
	})

	assert.Equal(suite.T(), "December push", strategy.Name)
	require.Len(suite.T(), strategy.Goals, 1)
	assert.Equal(suite.T(), strategy.ID, strategy.Goals[0].StrategyID)
}

func (suite *TestSuiteStandard) TestStrategyEndBeforeStart() {
	strategy := models.Strategy{
		Name:      "Backwards",
		StartDate: time.Date(2025, 12, 29, 12, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC),
	}

	err := models.DB.Create(&strategy).Error
	assert.ErrorIs(suite.T(), err, models.ErrStrategyEndBeforeStart)
}

func (suite *TestSuiteStandard) TestStrategyGoalAmountValidation() {
	strategy := models.Strategy{
		Name:      "Zero goal",
		StartDate: time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 12, 29, 12, 0, 0, 0, time.UTC),
		Goals: []models.StrategyGoal{
			{Name: "Nothing", Amount: decimal.Zero},
		},
	}

	err := models.DB.Create(&strategy).Error
	assert.ErrorIs(suite.T(), err, models.ErrGoalAmountNotPositive)
}

func (suite *TestSuiteStandard) TestStrategyGoalsDeletedWithStrategy() {
	strategy := suite.createTestStrategy(models.Strategy{
		Name:      "Short lived",
		StartDate: time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 12, 29, 12, 0, 0, 0, time.UTC),
		Goals: []models.StrategyGoal{
			{Name: "Emergency fund", Amount: decimal.NewFromInt(2000000)},
		},
	})

	require.NoError(suite.T(), models.DB.Select("Goals").Delete(&strategy).Error)

	var count int64
	require.NoError(suite.T(), models.DB.Model(&models.StrategyGoal{}).Where("strategy_id = ?", strategy.ID).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}
