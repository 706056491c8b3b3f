package types

import (
	"errors"
	"fmt"
	"time"
)

// FilterType selects the granularity of a period filter.
type FilterType string

const (
	FilterWeek  FilterType = "week"
	FilterMonth FilterType = "month"
	FilterYear  FilterType = "year"
)

var ErrInvalidFilter = errors.New("the period filter is invalid")

// Filter is a logical period selector: an ISO week, a calendar month or a
// calendar year. It is the single temporal contract all aggregations
// honor, so that period boundaries never disagree between views.
type Filter struct {
	Type  FilterType `json:"type" form:"type" example:"week"`
	Year  int        `json:"year" form:"year" example:"2026"`
	Week  int        `json:"week,omitempty" form:"week" example:"14"`   // ISO week number, 1-53. Only for type=week.
	Month time.Month `json:"month,omitempty" form:"month" example:"4"` // Calendar month, 1-12. Only for type=month.
}

// WeekOf returns the ISO year and week number a time occurs in.
func WeekOf(t time.Time) (year, week int) {
	return t.ISOWeek()
}

// Validate reports whether the filter describes a real period.
func (f Filter) Validate() error {
	switch f.Type {
	case FilterWeek:
		if f.Week < 1 || f.Week > weeksInYear(f.Year) {
			return fmt.Errorf("%w: week %d does not exist in %d", ErrInvalidFilter, f.Week, f.Year)
		}
	case FilterMonth:
		if f.Month < time.January || f.Month > time.December {
			return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidFilter)
		}
	case FilterYear:
	default:
		return fmt.Errorf("%w: type must be one of week, month, year", ErrInvalidFilter)
	}

	if f.Year < 1 {
		return fmt.Errorf("%w: year must be positive", ErrInvalidFilter)
	}

	return nil
}

// Contains reports whether the time instant falls within the period.
func (f Filter) Contains(t time.Time) bool {
	switch f.Type {
	case FilterWeek:
		year, week := WeekOf(t)
		return year == f.Year && week == f.Week
	case FilterMonth:
		return t.Year() == f.Year && t.Month() == f.Month
	case FilterYear:
		return t.Year() == f.Year
	}

	return false
}

// Anchor resolves the filter to a concrete instant. When the filter covers
// now, it returns now exactly so that entries logged from the current view
// timestamp precisely. Otherwise it returns the canonical start of the
// period at 12:00 local time; noon sidesteps daylight-saving shifts at
// period boundaries.
func (f Filter) Anchor(now time.Time) time.Time {
	if f.Contains(now) {
		return now
	}

	switch f.Type {
	case FilterWeek:
		monday := mondayOfWeek(f.Year, f.Week)
		return time.Date(monday.Year(), monday.Month(), monday.Day(), 12, 0, 0, 0, now.Location())
	case FilterMonth:
		return time.Date(f.Year, f.Month, 1, 12, 0, 0, 0, now.Location())
	default:
		return time.Date(f.Year, time.January, 1, 12, 0, 0, 0, now.Location())
	}
}

// Previous returns the filter for the immediately preceding period.
func (f Filter) Previous() Filter {
	switch f.Type {
	case FilterWeek:
		if f.Week == 1 {
			return Filter{Type: FilterWeek, Year: f.Year - 1, Week: weeksInYear(f.Year - 1)}
		}
		return Filter{Type: FilterWeek, Year: f.Year, Week: f.Week - 1}
	case FilterMonth:
		if f.Month == time.January {
			return Filter{Type: FilterMonth, Year: f.Year - 1, Month: time.December}
		}
		return Filter{Type: FilterMonth, Year: f.Year, Month: f.Month - 1}
	default:
		return Filter{Type: FilterYear, Year: f.Year - 1}
	}
}

// Next returns the filter for the immediately following period.
func (f Filter) Next() Filter {
	switch f.Type {
	case FilterWeek:
		if f.Week >= weeksInYear(f.Year) {
			return Filter{Type: FilterWeek, Year: f.Year + 1, Week: 1}
		}
		return Filter{Type: FilterWeek, Year: f.Year, Week: f.Week + 1}
	case FilterMonth:
		if f.Month == time.December {
			return Filter{Type: FilterMonth, Year: f.Year + 1, Month: time.January}
		}
		return Filter{Type: FilterMonth, Year: f.Year, Month: f.Month + 1}
	default:
		return Filter{Type: FilterYear, Year: f.Year + 1}
	}
}

// String returns a human readable description of the period.
func (f Filter) String() string {
	switch f.Type {
	case FilterWeek:
		return fmt.Sprintf("week %d of %d", f.Week, f.Year)
	case FilterMonth:
		return fmt.Sprintf("%04d-%02d", f.Year, f.Month)
	default:
		return fmt.Sprintf("%d", f.Year)
	}
}

// mondayOfWeek returns the Monday starting the given ISO week at midnight
// in the local time zone. January 4 is in ISO week 1 by definition.
func mondayOfWeek(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.Local)

	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	return jan4.AddDate(0, 0, -(weekday-1)+(week-1)*7)
}

// weeksInYear returns 52 or 53 depending on where December 28 falls,
// which is always in the last ISO week of its year.
func weeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}
