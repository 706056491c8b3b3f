package models_test

import (
	"testing"
	"time"

	"github.com/pocketplan/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSavingsTransactionCreate() {
	transaction := suite.createTestSavingsTransaction(models.SavingsTransaction{
		Type:   models.SavingsDeposit,
		Amount: decimal.NewFromInt(500000),
		Note:   "  weekly leftover  ",
		Date:   time.Date(2025, 11, 24, 9, 0, 0, 0, time.FixedZone("ICT", 7*3600)),
	})

	assert.Equal(suite.T(), "weekly leftover", transaction.Note)
	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestSavingsTransactionValidation() {
	tests := []struct {
		name        string
		transaction models.SavingsTransaction
		err         error
	}{
		{
			"amount not positive",
			models.SavingsTransaction{Type: models.SavingsDeposit, Amount: decimal.Zero},
			models.ErrAmountNotPositive,
		},
		{
			"negative amount",
			models.SavingsTransaction{Type: models.SavingsWithdrawal, Amount: decimal.NewFromInt(-100)},
			models.ErrAmountNotPositive,
		},
		{
			"invalid type",
			models.SavingsTransaction{Type: "transfer", Amount: decimal.NewFromInt(100000)},
			models.ErrSavingsTypeInvalid,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.transaction).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
