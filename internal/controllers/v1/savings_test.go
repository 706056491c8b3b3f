package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/pocketplan/backend/internal/controllers/v1"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSavingsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestSavingsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/savings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, POST", r.Header().Get("allow"))

	transaction := createTestSavingsTransaction(suite.T(), v1.SavingsTransactionEditable{Amount: decimal.NewFromInt(100000)})

	r = test.Request(suite.T(), http.MethodOptions, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestSavingsCreate() {
	transaction := createTestSavingsTransaction(suite.T(), v1.SavingsTransactionEditable{
		Type:   models.SavingsDeposit,
		Amount: decimal.NewFromInt(500000),
		Note:   "Leftover cash",
	})

	assert.Equal(suite.T(), models.SavingsDeposit, transaction.Data.Type)
	assert.True(suite.T(), transaction.Data.Amount.Equal(decimal.NewFromInt(500000)))
}

func (suite *TestSuiteStandard) TestSavingsWithdrawalExceedsBalance() {
	_ = createTestSavingsTransaction(suite.T(), v1.SavingsTransactionEditable{
		Type:   models.SavingsDeposit,
		Amount: decimal.NewFromInt(300000),
	})

	// The balance is 300000, a withdrawal of 500000 must be refused
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/savings", []v1.SavingsTransactionEditable{
		{Type: models.SavingsWithdrawal, Amount: decimal.NewFromInt(500000)},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.SavingsTransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), models.ErrWithdrawalExceedsBalance.Error(), *response.Data[0].Error)

	// A withdrawal within the balance is fine
	_ = createTestSavingsTransaction(suite.T(), v1.SavingsTransactionEditable{
		Type:   models.SavingsWithdrawal,
		Amount: decimal.NewFromInt(200000),
	})
}

func (suite *TestSuiteStandard) TestSavingsListBalance() {
	_ = createTestSavingsTransaction(suite.T(), v1.SavingsTransactionEditable{
		Type:   models.SavingsDeposit,
		Amount: decimal.NewFromInt(500000),
		Date:   time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC),
	})

	_ = createTestSavingsTransaction(suite.T(), v1.SavingsTransactionEditable{
		Type:   models.SavingsWithdrawal,
		Amount: decimal.NewFromInt(200000),
		Date:   time.Date(2025, 11, 17, 12, 0, 0, 0, time.UTC),
	})

	// The balance covers the full history even when the page does not
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/savings?limit=1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SavingsTransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Balance)
	assert.True(suite.T(), response.Balance.Equal(decimal.NewFromInt(300000)), "got %s", response.Balance)
	assert.Equal(suite.T(), int64(2), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestSavingsGetFilter() {
	_ = createTestSavingsTransaction(suite.T(), v1.SavingsTransactionEditable{
		Type:   models.SavingsDeposit,
		Amount: decimal.NewFromInt(500000),
		Note:   "Weekly leftover",
	})

	_ = createTestSavingsTransaction(suite.T(), v1.SavingsTransactionEditable{
		Type:   models.SavingsWithdrawal,
		Amount: decimal.NewFromInt(100000),
		Note:   "Phone repair",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 2},
		{"Deposits", "type=deposit", 1},
		{"Withdrawals", "type=withdrawal", 1},
		{"Note", "note=leftover", 1},
		{"Search", "search=repair", 1},
		{"No match", "note=vacation", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/savings?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SavingsTransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestSavingsDelete() {
	transaction := createTestSavingsTransaction(suite.T(), v1.SavingsTransactionEditable{Amount: decimal.NewFromInt(100000)})

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/savings/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
