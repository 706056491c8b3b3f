package engine

import (
	"time"

	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Obligation projects the total amount that must be reserved for debt
// service between now and the target date.
//
// Fixed debts contribute their installment once per started month,
// approximated as round(days/30) with a minimum of one. Flexible debts
// extrapolate their current weekly need linearly across the weeks to the
// target. The result is monotonically non-decreasing in the horizon,
// stepping at month and week boundaries.
//
// BNPL debts are included: obligation projection is future cash outflow,
// not spending attribution, and their balances are real outflow.
func Obligation(debts []models.Debt, now, target time.Time) decimal.Decimal {
	daysToTarget := types.DaysBetween(now, target)
	if daysToTarget < 1 {
		daysToTarget = 1
	}
	weeksToTarget := ceilDiv(daysToTarget, 7)

	total := decimal.Zero
	for _, debt := range debts {
		if !debt.Active() {
			continue
		}

		if debt.RepaymentType == models.RepaymentFixed {
			months := (daysToTarget + 15) / 30 // round to nearest month
			if months < 1 {
				months = 1
			}

			total = total.Add(debt.MonthlyInstallment.Mul(decimal.NewFromInt(int64(months))))
			continue
		}

		need := debt.WeeklyNeed(now)
		total = total.Add(need.Mul(decimal.NewFromInt(int64(weeksToTarget))))
	}

	return total
}

// WeeklyContribution returns the amount to set aside this week across
// all active debts. Debts past their due date contribute their full
// remaining balance.
func WeeklyContribution(debts []models.Debt, now time.Time) decimal.Decimal {
	total := decimal.Zero

	for _, debt := range debts {
		if !debt.Active() {
			continue
		}

		weeks := ceilDiv(debt.DaysUntilDue(now), 7)
		if weeks <= 0 {
			total = total.Add(debt.Remaining())
			continue
		}

		total = total.Add(debt.Remaining().Div(decimal.NewFromInt(int64(weeks))))
	}

	return total
}

// ceilDiv divides and rounds towards positive infinity.
func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}

	return (a + b - 1) / b
}
