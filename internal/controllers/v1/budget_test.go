package v1_test

import (
	"net/http"

	v1 "github.com/pocketplan/backend/internal/controllers/v1"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}

func (suite *TestSuiteStandard) TestBudgetOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, PATCH", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestBudgetGetCreatesDefaults() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Food.Equal(decimal.NewFromInt(315000)))
	assert.True(suite.T(), response.Data.Misc.Equal(decimal.NewFromInt(100000)))

	// The second read returns the same record
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var second v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &second)
	assert.Equal(suite.T(), response.Data.ID, second.Data.ID)
}

func (suite *TestSuiteStandard) TestBudgetUpdate() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/budget", map[string]any{
		"food": decimal.NewFromInt(400000),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Misc keeps its default when the body does not set it
	assert.True(suite.T(), response.Data.Food.Equal(decimal.NewFromInt(400000)))
	assert.True(suite.T(), response.Data.Misc.Equal(decimal.NewFromInt(100000)))
}

func (suite *TestSuiteStandard) TestBudgetUpdateInvalid() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/budget", map[string]any{
		"misc": decimal.NewFromInt(-50000),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, models.ErrBudgetAmountNegative.Error())
}
