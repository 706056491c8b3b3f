package engine

import (
	"sort"
	"time"

	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
)

// UpcomingHoliday pairs a holiday with its distance from today.
type UpcomingHoliday struct {
	Holiday  models.Holiday `json:"holiday"`
	DaysAway int            `json:"daysAway"`
}

// UpcomingHolidays lists holidays on or after now, soonest first,
// limited to n entries. A non-positive n returns all of them.
func UpcomingHolidays(holidays []models.Holiday, now time.Time, n int) []UpcomingHoliday {
	upcoming := make([]UpcomingHoliday, 0)

	for _, h := range holidays {
		days := types.DaysBetween(now, h.Date)
		if days < 0 {
			continue
		}

		upcoming = append(upcoming, UpcomingHoliday{Holiday: h, DaysAway: days})
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].DaysAway < upcoming[j].DaysAway
	})

	if n > 0 && len(upcoming) > n {
		upcoming = upcoming[:n]
	}

	return upcoming
}
