package engine

import (
	"time"

	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

// SumLogs adds up the amounts of all entries of one kind whose date
// falls within the filter period.
func SumLogs(entries []models.LogEntry, f types.Filter, kind models.LogKind) decimal.Decimal {
	sum := decimal.Zero

	for _, entry := range entries {
		if entry.Kind == kind && f.Contains(entry.Date) {
			sum = sum.Add(entry.Amount)
		}
	}

	return sum
}

// SumDebtPayments adds up all payment transactions within the filter
// period across all debts.
//
// BNPL debts are excluded entirely, not just their out-of-period
// transactions: their purchases were already expensed as food/misc, so
// settling the balance must not count as spending a second time.
func SumDebtPayments(debts []models.Debt, f types.Filter) decimal.Decimal {
	sum := decimal.Zero

	for _, debt := range debts {
		if debt.BNPL {
			continue
		}

		for _, t := range debt.Transactions {
			if t.Type == models.DebtPayment && f.Contains(t.Date) {
				sum = sum.Add(t.Amount)
			}
		}
	}

	return sum
}

// SumSavings adds up savings transactions of one type within the filter period.
func SumSavings(history []models.SavingsTransaction, f types.Filter, t models.SavingsTransactionType) decimal.Decimal {
	sum := decimal.Zero

	for _, transaction := range history {
		if transaction.Type == t && f.Contains(transaction.Date) {
			sum = sum.Add(transaction.Amount)
		}
	}

	return sum
}

// SavingsBalance recomputes the savings balance from the full history,
// so that deleted transactions correctly undo their effect.
func SavingsBalance(history []models.SavingsTransaction) decimal.Decimal {
	balance := decimal.Zero

	for _, transaction := range history {
		if transaction.Type == models.SavingsDeposit {
			balance = balance.Add(transaction.Amount)
		} else {
			balance = balance.Sub(transaction.Amount)
		}
	}

	return balance
}

// TotalRemainingDebt returns the summed remaining balance of all active debts.
func TotalRemainingDebt(debts []models.Debt) decimal.Decimal {
	sum := decimal.Zero

	for _, debt := range debts {
		if debt.Active() {
			sum = sum.Add(debt.Remaining())
		}
	}

	return sum
}

// MonthlyIncome sums the income logged in the calendar month of now,
// excluding entries that merely moved money out of savings.
func MonthlyIncome(entries []models.LogEntry, now time.Time) decimal.Decimal {
	month := types.MonthOf(now)
	sum := decimal.Zero

	for _, entry := range entries {
		if entry.Kind != models.LogIncome || entry.SavingsWithdrawal {
			continue
		}

		if month.Contains(entry.Date) {
			sum = sum.Add(entry.Amount)
		}
	}

	return sum
}
