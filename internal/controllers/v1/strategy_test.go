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

func (suite *TestSuiteStandard) TestStrategiesDBClosed() {
	suite.CloseDB()

	_ = createTestStrategy(suite.T(), v1.StrategyEditable{}, http.StatusInternalServerError)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/strategies", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.StrategyListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}

// TestStrategiesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestStrategiesOptions() {
	tests := []struct {
		name   string
		id     string // path at the strategies endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No strategy with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Strategy exists", createTestStrategy(suite.T(), v1.StrategyEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/strategies", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestStrategiesCreate() {
	strategy := createTestStrategy(suite.T(), v1.StrategyEditable{
		Name:         "Tet savings push",
		WeeklyIncome: decimal.NewFromInt(2000000),
		WeeklyFood:   decimal.NewFromInt(315000),
		WeeklyMisc:   decimal.NewFromInt(100000),
		Goals: []v1.StrategyGoalEditable{
			{Name: "Emergency fund", Amount: decimal.NewFromInt(5000000)},
			{Name: "New laptop", Amount: decimal.NewFromInt(15000000)},
		},
	})

	assert.Equal(suite.T(), "Tet savings push", strategy.Data.Name)
	assert.Contains(suite.T(), strategy.Data.Links.Plan, "/plan")

	require.Len(suite.T(), strategy.Data.Goals, 2)
	assert.Equal(suite.T(), "Emergency fund", strategy.Data.Goals[0].Name)
	assert.NotEqual(suite.T(), uuid.Nil, strategy.Data.Goals[0].ID)
}

func (suite *TestSuiteStandard) TestStrategiesCreateInvalid() {
	tests := []struct {
		name     string
		editable v1.StrategyEditable
	}{
		{
			"End before start",
			v1.StrategyEditable{
				StartDate: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			"Goal without amount",
			v1.StrategyEditable{
				Goals: []v1.StrategyGoalEditable{{Name: "Empty goal"}},
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			strategy := createTestStrategy(t, tt.editable, http.StatusBadRequest)
			assert.Nil(t, strategy.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestStrategiesGetFilter() {
	_ = createTestStrategy(suite.T(), v1.StrategyEditable{Name: "Tet savings push"})
	_ = createTestStrategy(suite.T(), v1.StrategyEditable{Name: "Debt payoff sprint"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 2},
		{"Fuzzy name", "name=push", 1},
		{"Search", "search=sprint", 1},
		{"No match", "name=vacation", 0},
		{"Limit", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/strategies?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.StrategyListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestStrategiesUpdate() {
	strategy := createTestStrategy(suite.T(), v1.StrategyEditable{
		Name:         "Tet savings push",
		WeeklyIncome: decimal.NewFromInt(2000000),
		Goals: []v1.StrategyGoalEditable{
			{Name: "Emergency fund", Amount: decimal.NewFromInt(5000000)},
		},
	})

	r := test.Request(suite.T(), http.MethodPatch, strategy.Data.Links.Self, map[string]any{
		"name": "Spring savings push",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, strategy.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StrategyResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Goals are untouched when the body does not set them
	assert.Equal(suite.T(), "Spring savings push", response.Data.Name)
	require.Len(suite.T(), response.Data.Goals, 1)
}

func (suite *TestSuiteStandard) TestStrategiesUpdateGoals() {
	strategy := createTestStrategy(suite.T(), v1.StrategyEditable{
		Name: "Tet savings push",
		Goals: []v1.StrategyGoalEditable{
			{Name: "Emergency fund", Amount: decimal.NewFromInt(5000000)},
			{Name: "New laptop", Amount: decimal.NewFromInt(15000000)},
		},
	})

	r := test.Request(suite.T(), http.MethodPatch, strategy.Data.Links.Self, map[string]any{
		"goals": []v1.StrategyGoalEditable{
			{Name: "Motorbike downpayment", Amount: decimal.NewFromInt(8000000)},
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StrategyResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Setting goals replaces the previous set wholesale
	require.Len(suite.T(), response.Data.Goals, 1)
	assert.Equal(suite.T(), "Motorbike downpayment", response.Data.Goals[0].Name)
}

func (suite *TestSuiteStandard) TestStrategiesDelete() {
	strategy := createTestStrategy(suite.T(), v1.StrategyEditable{})

	r := test.Request(suite.T(), http.MethodDelete, strategy.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, strategy.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestStrategiesPlan() {
	strategy := createTestStrategy(suite.T(), v1.StrategyEditable{
		Name:         "Tet savings push",
		WeeklyIncome: decimal.NewFromInt(1000000),
		WeeklyFood:   decimal.NewFromInt(315000),
		WeeklyMisc:   decimal.NewFromInt(100000),
		Goals: []v1.StrategyGoalEditable{
			{Name: "Emergency fund", Amount: decimal.NewFromInt(5680000)},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s?balance=500000", strategy.Data.Links.Plan), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StrategyPlanResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Four weeks at 585000 net on top of the 500000 seed
	assert.True(suite.T(), response.Data.Seed.Equal(decimal.NewFromInt(500000)))
	require.Len(suite.T(), response.Data.Weeks, 4)
	assert.True(suite.T(), response.Data.Weeks[0].Net.Equal(decimal.NewFromInt(585000)))
	assert.True(suite.T(), response.Data.Weeks[3].Balance.Equal(decimal.NewFromInt(2840000)))

	// 2840000 of the 5680000 goal is half way
	require.NotNil(suite.T(), response.Data.Progress)
	assert.True(suite.T(), response.Data.Progress.Equal(decimal.NewFromInt(50)))
}

func (suite *TestSuiteStandard) TestStrategiesPlanDefaultSeed() {
	_ = createTestSavingsTransaction(suite.T(), v1.SavingsTransactionEditable{
		Amount: decimal.NewFromInt(300000),
	})

	strategy := createTestStrategy(suite.T(), v1.StrategyEditable{
		WeeklyIncome: decimal.NewFromInt(1000000),
	})

	r := test.Request(suite.T(), http.MethodGet, strategy.Data.Links.Plan, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StrategyPlanResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// The savings balance seeds the projection
	assert.True(suite.T(), response.Data.Seed.Equal(decimal.NewFromInt(300000)))

	// No goals, no progress
	assert.Nil(suite.T(), response.Data.Progress)
}

func (suite *TestSuiteStandard) TestStrategiesPlanInvalidBalance() {
	strategy := createTestStrategy(suite.T(), v1.StrategyEditable{})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s?balance=alot", strategy.Data.Links.Plan), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
