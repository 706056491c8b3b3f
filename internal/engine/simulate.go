package engine

import (
	"time"

	"github.com/pocketplan/backend/internal/models"
	"github.com/shopspring/decimal"
)

// LineItem is a hypothetical income or expense in a simulation.
type LineItem struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// SimulationInput is a what-if scenario: ad hoc line items plus the live
// debt set, projected to a target date.
type SimulationInput struct {
	Now        time.Time
	TargetDate time.Time
	Incomes    []LineItem
	Expenses   []LineItem
	Debts      []models.Debt
}

// Simulation is the projected single-point-in-time balance with its
// components. A negative balance is a first-class outcome, not an error.
type Simulation struct {
	Income         decimal.Decimal `json:"income"`
	Expense        decimal.Decimal `json:"expense"`
	DebtObligation decimal.Decimal `json:"debtObligation"`
	Balance        decimal.Decimal `json:"balance"`
}

// Simulate projects the balance at the target date.
func Simulate(in SimulationInput) Simulation {
	income := decimal.Zero
	for _, item := range in.Incomes {
		income = income.Add(item.Amount)
	}

	expense := decimal.Zero
	for _, item := range in.Expenses {
		expense = expense.Add(item.Amount)
	}

	obligation := Obligation(in.Debts, in.Now, in.TargetDate)

	return Simulation{
		Income:         income,
		Expense:        expense,
		DebtObligation: obligation,
		Balance:        income.Sub(expense).Sub(obligation),
	}
}
