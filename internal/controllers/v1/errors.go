package v1

import (
	"errors"
	"net/http"

	"github.com/pocketplan/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errRecurrenceInvalid    = errors.New("the recurrence must be either weekly or monthly")
	errOccurrencesInvalid   = errors.New("the number of occurrences must be between 1 and 52")
	errTargetDateNotSet     = errors.New("the targetDate parameter must be set")
	errTargetDateInPast     = errors.New("the target date must not be in the past")
	errPurchaseNameNotSet   = errors.New("the purchase name must be set")
	errPurchasePriceInvalid = errors.New("the purchase price must be positive")
)
