package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/engine"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
)

// HolidayEditable represents all user configurable parameters
type HolidayEditable struct {
	Name      string    `json:"name" example:"Tet" default:""`
	Date      time.Time `json:"date" example:"2026-02-17T00:00:00Z"`
	TakingOff bool      `json:"takingOff" example:"true" default:"false"` // Is the day taken off work?
	Note      string    `json:"note" example:"Back to hometown" default:""`
}

func (editable HolidayEditable) model() models.Holiday {
	return models.Holiday{
		Name:      editable.Name,
		Date:      editable.Date,
		TakingOff: editable.TakingOff,
		Note:      editable.Note,
	}
}

type HolidayLinks struct {
	Self string `json:"self" example:"https://example.com/v1/holidays/d27a998d-20c2-4ba7-b1a1-5dcec5ac6a54"` // The holiday itself
}

type Holiday struct {
	models.DefaultModel
	HolidayEditable
	Links HolidayLinks `json:"links"`
}

func newHoliday(c *gin.Context, model models.Holiday) Holiday {
	return Holiday{
		DefaultModel: model.DefaultModel,
		HolidayEditable: HolidayEditable{
			Name:      model.Name,
			Date:      model.Date,
			TakingOff: model.TakingOff,
			Note:      model.Note,
		},
		Links: HolidayLinks{
			Self: fmt.Sprintf("%s/holidays/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type HolidayListResponse struct {
	Data       []Holiday   `json:"data"` // List of holidays
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"`
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type HolidayCreateResponse struct {
	Data  []HolidayResponse `json:"data"` // The created holidays or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"`
}

func (r *HolidayCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, HolidayResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type HolidayResponse struct {
	Data  *Holiday `json:"data"` // Data for the holiday
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type HolidayQueryFilter struct {
	Name      string `form:"name" filterField:"false"`   // By name
	TakingOff bool   `form:"takingOff"`                  // Is the day taken off work?
	Search    string `form:"search" filterField:"false"` // Search for this text in name and note
	Offset    uint   `form:"offset" filterField:"false"` // The offset of the first holiday returned. Defaults to 0.
	Limit     int    `form:"limit" filterField:"false"`  // Maximum number of holidays to return. Defaults to 50.
}

func (f HolidayQueryFilter) model() models.Holiday {
	return models.Holiday{
		TakingOff: f.TakingOff,
	}
}

// UpcomingHolidayQuery limits the upcoming listing.
type UpcomingHolidayQuery struct {
	Limit int `form:"limit"` // Maximum number of holidays to return. Non-positive returns all.
}

type UpcomingHolidayListResponse struct {
	Data  []engine.UpcomingHoliday `json:"data"` // Upcoming holidays, soonest first
	Error *string                  `json:"error" example:"the specified resource ID is not a valid UUID"`
}
