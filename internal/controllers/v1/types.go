package v1

import (
	"time"

	"github.com/pocketplan/backend/internal/types"
	pp_uuid "github.com/pocketplan/backend/internal/uuid"
)

type URIID struct {
	ID pp_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// PeriodQuery is the shared temporal filter for aggregating endpoints.
type PeriodQuery struct {
	Type  string `form:"type" example:"week"` // One of week, month, year
	Year  int    `form:"year" example:"2025"`
	Week  int    `form:"week" example:"48"`  // ISO week, only for type=week
	Month int    `form:"month" example:"11"` // Only for type=month
}

// filter converts the query to a validated period filter, defaulting to
// the week containing now.
func (q PeriodQuery) filter(now time.Time) (types.Filter, error) {
	if q.Type == "" {
		year, week := now.ISOWeek()
		return types.Filter{Type: types.FilterWeek, Year: year, Week: week}, nil
	}

	f := types.Filter{
		Type:  types.FilterType(q.Type),
		Year:  q.Year,
		Week:  q.Week,
		Month: time.Month(q.Month),
	}

	if err := f.Validate(); err != nil {
		return types.Filter{}, err
	}

	return f, nil
}
