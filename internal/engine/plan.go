package engine

import (
	"fmt"
	"time"

	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Flexible debts start showing up in the weekly plan this many weeks
// before their due date; earlier weeks are left untouched by them.
const lookaheadWeeks = 4

// WeekRecord is one projected week of a strategy plan.
type WeekRecord struct {
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	Income      decimal.Decimal `json:"income"`
	Expense     decimal.Decimal `json:"expense"`
	DebtPayment decimal.Decimal `json:"debtPayment"`
	DebtDetails []string        `json:"debtDetails"`
	Net         decimal.Decimal `json:"net"`
	Balance     decimal.Decimal `json:"balance"`
}

// Plan projects a strategy into a week-by-week ledger against the live
// debt set, seeded with the caller's current savings balance.
//
// It steps in 7-day windows from the start date up to, excluding, the
// end date. Fixed debts charge their installment in any week containing
// their due day of month. Flexible debts are pro-rated over the weeks
// left once the due date is within the lookahead, and fall due as a lump
// settlement in the week of the due date itself.
func Plan(s models.Strategy, debts []models.Debt, seed decimal.Decimal) []WeekRecord {
	records := make([]WeekRecord, 0)
	balance := seed

	for current := s.StartDate; current.Before(s.EndDate); current = current.AddDate(0, 0, 7) {
		weekStart := current
		weekEnd := current.AddDate(0, 0, 6)

		income := s.WeeklyIncome
		expense := s.WeeklyFood.Add(s.WeeklyMisc)

		debtPayment := decimal.Zero
		details := make([]string, 0)

		for _, debt := range debts {
			remaining := debt.Remaining()
			if !remaining.IsPositive() {
				continue
			}

			if debt.RepaymentType == models.RepaymentFixed {
				dueDay := debt.DueDate.Day()
				if !weekContainsDay(weekStart, dueDay) {
					continue
				}

				debtPayment = debtPayment.Add(debt.MonthlyInstallment)
				details = append(details, fmt.Sprintf("%s: -%sđ (installment due on day %d)",
					debt.Name, formatAmount(debt.MonthlyInstallment), dueDay))
				continue
			}

			daysToDue := types.DaysBetween(weekStart, debt.DueDate)
			weeksToDue := ceilDiv(daysToDue, 7)

			switch {
			case daysToDue > 0 && weeksToDue <= lookaheadWeeks:
				weeksLeft := weeksToDue
				if weeksLeft < 1 {
					weeksLeft = 1
				}

				weekly := remaining.Div(decimal.NewFromInt(int64(weeksLeft))).Ceil()
				debtPayment = debtPayment.Add(weekly)
				details = append(details, fmt.Sprintf("%s: -%sđ (due soon: %d weeks left)",
					debt.Name, formatAmount(weekly), weeksLeft))

			case daysToDue > -7 && daysToDue <= 0:
				debtPayment = debtPayment.Add(remaining)
				details = append(details, fmt.Sprintf("%s: -%sđ (settle now)",
					debt.Name, formatAmount(remaining)))
			}
		}

		net := income.Sub(expense).Sub(debtPayment)
		balance = balance.Add(net)

		records = append(records, WeekRecord{
			Start:       weekStart,
			End:         weekEnd,
			Income:      income,
			Expense:     expense,
			DebtPayment: debtPayment,
			DebtDetails: details,
			Net:         net,
			Balance:     balance,
		})
	}

	return records
}

// Progress returns the projected goal completion in percent, clamped to
// 0-100. The second return value is false when the strategy has no goals.
func Progress(records []WeekRecord, goals []models.StrategyGoal, seed decimal.Decimal) (decimal.Decimal, bool) {
	totalGoal := decimal.Zero
	for _, goal := range goals {
		totalGoal = totalGoal.Add(goal.Amount)
	}

	if !totalGoal.IsPositive() {
		return decimal.Zero, false
	}

	final := seed
	if len(records) > 0 {
		final = records[len(records)-1].Balance
	}

	progress := final.Div(totalGoal).Mul(decimal.NewFromInt(100))
	if progress.IsNegative() {
		return decimal.Zero, true
	}
	if progress.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.NewFromInt(100), true
	}

	return progress, true
}

// weekContainsDay reports whether any of the seven calendar days starting
// at weekStart has the given day of month.
func weekContainsDay(weekStart time.Time, day int) bool {
	for i := 0; i < 7; i++ {
		if weekStart.AddDate(0, 0, i).Day() == day {
			return true
		}
	}

	return false
}
