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

// TestLogEntriesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestLogEntriesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestLogEntry(t, v1.LogEntryEditable{Amount: decimal.NewFromInt(10000)}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/logs", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.LogEntryListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestLogEntriesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestLogEntriesOptions() {
	tests := []struct {
		name   string
		id     string // path at the logs endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No log entry with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Log entry exists", createTestLogEntry(suite.T(), v1.LogEntryEditable{Amount: decimal.NewFromInt(10000)}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/logs", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestLogEntriesCreate() {
	entry := createTestLogEntry(suite.T(), v1.LogEntryEditable{
		Kind:   models.LogFood,
		Name:   "Lunch",
		Amount: decimal.NewFromInt(45000),
		Date:   time.Date(2025, 11, 24, 12, 0, 0, 0, time.UTC),
	})

	assert.Equal(suite.T(), models.LogFood, entry.Data.Kind)
	assert.Equal(suite.T(), "Lunch", entry.Data.Name)
	assert.True(suite.T(), entry.Data.Amount.Equal(decimal.NewFromInt(45000)))
	assert.Contains(suite.T(), entry.Data.Links.Self, "/v1/logs/")
}

func (suite *TestSuiteStandard) TestLogEntriesCreateInvalid() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken JSON", `{ "kind": "food" `, http.StatusBadRequest},
		{"Not an array", `{ "kind": "food" }`, http.StatusBadRequest},
		{"Invalid kind", []v1.LogEntryEditable{{Kind: "transport", Amount: decimal.NewFromInt(1000)}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/logs", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestLogEntriesGetFilter() {
	_ = createTestLogEntry(suite.T(), v1.LogEntryEditable{
		Kind:   models.LogIncome,
		Name:   "Salary",
		Amount: decimal.NewFromInt(2000000),
		Date:   time.Date(2025, 11, 24, 12, 0, 0, 0, time.UTC),
	})

	_ = createTestLogEntry(suite.T(), v1.LogEntryEditable{
		Kind:   models.LogFood,
		Name:   "Lunch",
		Amount: decimal.NewFromInt(45000),
		Date:   time.Date(2025, 11, 25, 12, 0, 0, 0, time.UTC),
	})

	_ = createTestLogEntry(suite.T(), v1.LogEntryEditable{
		Kind:   models.LogFood,
		Name:   "Groceries",
		Amount: decimal.NewFromInt(120000),
		Date:   time.Date(2025, 11, 28, 12, 0, 0, 0, time.UTC),
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Kind food", "kind=food", 2},
		{"Kind income", "kind=income", 1},
		{"Name", "name=Lunch", 1},
		{"Fuzzy name", "name=r", 2},
		{"Search", "search=gro", 1},
		{"From", "from=2025-11-25", 2},
		{"Until", "until=2025-11-25", 2},
		{"From and until", "from=2025-11-25&until=2025-11-26", 1},
		{"Invalid from", "from=yesterday", 0},
		{"Offset", "offset=1", 2},
		{"Limit", "limit=1", 1},
		{"Limit zero", "limit=0", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/logs?%s", tt.query), "")

			var response v1.LogEntryListResponse
			test.DecodeResponse(t, &r, &response)

			if tt.name == "Invalid from" {
				test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
				return
			}

			test.AssertHTTPStatus(t, &r, http.StatusOK)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestLogEntriesOrderedByDate() {
	first := createTestLogEntry(suite.T(), v1.LogEntryEditable{
		Amount: decimal.NewFromInt(10000),
		Date:   time.Date(2025, 11, 24, 12, 0, 0, 0, time.UTC),
	})

	second := createTestLogEntry(suite.T(), v1.LogEntryEditable{
		Amount: decimal.NewFromInt(20000),
		Date:   time.Date(2025, 11, 26, 12, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/logs", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LogEntryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Newest first
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), second.Data.ID, response.Data[0].ID)
	assert.Equal(suite.T(), first.Data.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestLogEntriesGetSingle() {
	entry := createTestLogEntry(suite.T(), v1.LogEntryEditable{Amount: decimal.NewFromInt(10000)})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing log entry", entry.Data.ID.String(), http.StatusOK},
		{"No log entry with this ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "definitely-not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/logs/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestLogEntriesUpdate() {
	entry := createTestLogEntry(suite.T(), v1.LogEntryEditable{
		Kind:   models.LogMisc,
		Name:   "Bus fare",
		Amount: decimal.NewFromInt(15000),
	})

	r := test.Request(suite.T(), http.MethodPatch, entry.Data.Links.Self, map[string]any{
		"name": "Grab ride",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, entry.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.LogEntryResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "Grab ride", updated.Data.Name)

	// Fields not in the body stay untouched
	assert.True(suite.T(), updated.Data.Amount.Equal(decimal.NewFromInt(15000)))
}

func (suite *TestSuiteStandard) TestLogEntriesDelete() {
	entry := createTestLogEntry(suite.T(), v1.LogEntryEditable{Amount: decimal.NewFromInt(10000)})

	r := test.Request(suite.T(), http.MethodDelete, entry.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, entry.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
