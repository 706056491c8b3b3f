package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/pocketplan/backend/internal/controllers/v1"
	"github.com/pocketplan/backend/internal/engine"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSimulationOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/simulation", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestSimulationDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/simulation", v1.SimulationEditable{
		TargetDate: time.Now().AddDate(0, 0, 14),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.SimulationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}

func (suite *TestSuiteStandard) TestSimulationCreate() {
	_ = createTestDebt(suite.T(), v1.DebtCreateRequest{
		DebtEditable: v1.DebtEditable{
			Name:               "Motorbike loan",
			TotalAmount:        decimal.NewFromInt(5000000),
			RepaymentType:      models.RepaymentFixed,
			MonthlyInstallment: decimal.NewFromInt(1000000),
		},
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/simulation", v1.SimulationEditable{
		TargetDate: time.Now().AddDate(0, 0, 14),
		Incomes: []engine.LineItem{
			{Name: "Salary", Amount: decimal.NewFromInt(3000000)},
			{Name: "Freelance gig", Amount: decimal.NewFromInt(2700000)},
		},
		Expenses: []engine.LineItem{
			{Name: "Rent", Amount: decimal.NewFromInt(2500000)},
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SimulationResponse
	test.DecodeResponse(suite.T(), &r, &response)

	data := response.Data
	require.NotNil(suite.T(), data)

	assert.True(suite.T(), data.Income.Equal(decimal.NewFromInt(5700000)))
	assert.True(suite.T(), data.Expense.Equal(decimal.NewFromInt(2500000)))

	// One installment falls into the two-week horizon
	assert.True(suite.T(), data.DebtObligation.Equal(decimal.NewFromInt(1000000)))
	assert.True(suite.T(), data.Balance.Equal(decimal.NewFromInt(2200000)))
}

func (suite *TestSuiteStandard) TestSimulationNegativeBalance() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/simulation", v1.SimulationEditable{
		TargetDate: time.Now().AddDate(0, 0, 7),
		Expenses: []engine.LineItem{
			{Name: "Wedding gift", Amount: decimal.NewFromInt(1500000)},
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SimulationResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// A shortfall is reported, not rejected
	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromInt(-1500000)))
}

func (suite *TestSuiteStandard) TestSimulationInvalid() {
	tests := []struct {
		name     string
		editable v1.SimulationEditable
	}{
		{"Target date not set", v1.SimulationEditable{}},
		{"Target date in the past", v1.SimulationEditable{TargetDate: time.Now().AddDate(0, 0, -3)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/simulation", tt.editable)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}
