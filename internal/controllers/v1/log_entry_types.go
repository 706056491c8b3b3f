package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"github.com/shopspring/decimal"
)

// LogEntryEditable represents all user configurable parameters
type LogEntryEditable struct {
	Kind              models.LogKind  `json:"kind" example:"food" default:"misc"`       // One of income, food, misc
	Name              string          `json:"name" example:"Lunch" default:""`          // Free-text label for the entry
	Amount            decimal.Decimal `json:"amount" example:"45000"`                   // Signed amount, negative entries are corrections
	Date              time.Time       `json:"date" example:"2025-11-24T12:00:00Z"`      // Date of the entry, defaults to now
	SavingsWithdrawal bool            `json:"savingsWithdrawal" example:"false" default:"false"` // Set on income entries created by a savings withdrawal
}

func (editable LogEntryEditable) model() models.LogEntry {
	return models.LogEntry{
		Kind:              editable.Kind,
		Name:              editable.Name,
		Amount:            editable.Amount,
		Date:              editable.Date,
		SavingsWithdrawal: editable.SavingsWithdrawal,
	}
}

type LogEntryLinks struct {
	Self string `json:"self" example:"https://example.com/v1/logs/d1b462b7-f799-4d28-86f8-eafcbd122b47"` // The log entry itself
}

type LogEntry struct {
	models.DefaultModel
	LogEntryEditable
	Links LogEntryLinks `json:"links"`
}

func newLogEntry(c *gin.Context, model models.LogEntry) LogEntry {
	return LogEntry{
		DefaultModel: model.DefaultModel,
		LogEntryEditable: LogEntryEditable{
			Kind:              model.Kind,
			Name:              model.Name,
			Amount:            model.Amount,
			Date:              model.Date,
			SavingsWithdrawal: model.SavingsWithdrawal,
		},
		Links: LogEntryLinks{
			Self: fmt.Sprintf("%s/logs/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type LogEntryListResponse struct {
	Data       []LogEntry  `json:"data"`                                                          // List of log entries
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type LogEntryCreateResponse struct {
	Data  []LogEntryResponse `json:"data"`                                                          // List of the created entries or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *LogEntryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, LogEntryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type LogEntryResponse struct {
	Data  *LogEntry `json:"data"`                                                          // Data for the log entry
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type LogEntryQueryFilter struct {
	Kind              string `form:"kind"`                                  // By kind
	Name              string `form:"name" filterField:"false"`              // By name
	Search            string `form:"search" filterField:"false"`            // Search for this text in the name
	SavingsWithdrawal bool   `form:"savingsWithdrawal"`                     // Is the entry a savings withdrawal?
	From              string `form:"from" filterField:"false"`              // Only entries on or after this date (YYYY-MM-DD)
	Until             string `form:"until" filterField:"false"`             // Only entries on or before this date (YYYY-MM-DD)
	Offset            uint   `form:"offset" filterField:"false"`            // The offset of the first entry returned. Defaults to 0.
	Limit             int    `form:"limit" filterField:"false"`             // Maximum number of entries to return. Defaults to 50.
}

func (f LogEntryQueryFilter) model() models.LogEntry {
	return models.LogEntry{
		Kind:              models.LogKind(f.Kind),
		SavingsWithdrawal: f.SavingsWithdrawal,
	}
}
