package models_test

import (
	"testing"
	"time"

	"github.com/pocketplan/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestLogEntryCreate() {
	entry := suite.createTestLogEntry(models.LogEntry{
		Kind:   models.LogMisc,
		Name:   "  Bus fare  ",
		Amount: decimal.NewFromInt(15000),
		Date:   time.Date(2025, 11, 24, 9, 0, 0, 0, time.FixedZone("ICT", 7*3600)),
	})

	assert.Equal(suite.T(), "Bus fare", entry.Name)
	assert.Equal(suite.T(), time.UTC, entry.Date.Location())
}

func (suite *TestSuiteStandard) TestLogEntryKindValidation() {
	tests := []struct {
		kind  models.LogKind
		valid bool
	}{
		{models.LogIncome, true},
		{models.LogFood, true},
		{models.LogMisc, true},
		{"transport", false},
		{"", false},
	}

	for _, tt := range tests {
		suite.T().Run(string(tt.kind), func(t *testing.T) {
			entry := models.LogEntry{Kind: tt.kind, Amount: decimal.NewFromInt(10000)}
			err := models.DB.Create(&entry).Error

			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, models.ErrLogKindInvalid)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestLogEntryDateDefaults() {
	entry := suite.createTestLogEntry(models.LogEntry{
		Kind:   models.LogFood,
		Amount: decimal.NewFromInt(45000),
	})

	assert.False(suite.T(), entry.Date.IsZero())
}

func (suite *TestSuiteStandard) TestLogEntryNegativeCorrection() {
	// Corrections are negative amounts and are accepted as-is
	entry := suite.createTestLogEntry(models.LogEntry{
		Kind:   models.LogFood,
		Name:   "Refund",
		Amount: decimal.NewFromInt(-20000),
	})

	assert.True(suite.T(), entry.Amount.IsNegative())
}
