package engine

import (
	"time"

	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Recurring weekly fixed costs outside the tracked budgets.
var (
	GasCost  = decimal.NewFromInt(70000)
	WifiCost = decimal.NewFromInt(30000)
)

// DefaultFixedCosts returns the built-in weekly fixed cost total.
func DefaultFixedCosts() decimal.Decimal {
	return GasCost.Add(WifiCost)
}

// OverviewInput gathers everything the dashboard rollup reads.
type OverviewInput struct {
	Now        time.Time
	Filter     types.Filter
	Logs       []models.LogEntry
	Savings    []models.SavingsTransaction
	Debts      []models.Debt
	Budget     models.Budget
	FixedCosts decimal.Decimal
}

// OverviewResult is the dashboard rollup for one filter window.
type OverviewResult struct {
	Income                 decimal.Decimal `json:"income"`
	FoodSpending           decimal.Decimal `json:"foodSpending"`
	MiscSpending           decimal.Decimal `json:"miscSpending"`
	DebtPaid               decimal.Decimal `json:"debtPaid"`
	SavingsDeposited       decimal.Decimal `json:"savingsDeposited"`
	SavingsBalance         decimal.Decimal `json:"savingsBalance"`
	FixedCosts             decimal.Decimal `json:"fixedCosts"`
	WeeklyDebtContribution decimal.Decimal `json:"weeklyDebtContribution"`
	TotalActualSpending    decimal.Decimal `json:"totalActualSpending"`
	TotalPlannedSpending   decimal.Decimal `json:"totalPlannedSpending"`
	FinancialStatus        decimal.Decimal `json:"financialStatus"`
	DisposableForDebts     decimal.Decimal `json:"disposableForDebts"`
	TotalDebt              decimal.Decimal `json:"totalDebt"`
	MonthlyIncomeEstimate  decimal.Decimal `json:"monthlyIncomeEstimate"`
}

// Overview computes the dashboard numbers for one filter window.
//
// Actual spending is fixed costs plus logged food and misc plus debt
// payments inside the window. Financial status is income minus actual
// spending minus what already went into savings. The monthly income
// estimate falls back to four weeks of planned spending when the
// current month has no income yet.
func Overview(in OverviewInput) OverviewResult {
	fixed := in.FixedCosts
	if fixed.IsZero() {
		fixed = DefaultFixedCosts()
	}

	income := SumLogs(in.Logs, in.Filter, models.LogIncome)
	food := SumLogs(in.Logs, in.Filter, models.LogFood)
	misc := SumLogs(in.Logs, in.Filter, models.LogMisc)
	debtPaid := SumDebtPayments(in.Debts, in.Filter)
	deposited := SumSavings(in.Savings, in.Filter, models.SavingsDeposit)
	balance := SavingsBalance(in.Savings)
	contribution := WeeklyContribution(in.Debts, in.Now)

	actual := fixed.Add(food).Add(misc).Add(debtPaid)
	planned := fixed.Add(in.Budget.Food).Add(in.Budget.Misc).Add(contribution)
	status := income.Sub(actual).Sub(deposited)
	disposable := income.Sub(fixed.Add(food).Add(misc))

	estimate := MonthlyIncome(in.Logs, in.Now)
	if !estimate.IsPositive() {
		estimate = planned.Mul(decimal.NewFromInt(4))
	}

	return OverviewResult{
		Income:                 income,
		FoodSpending:           food,
		MiscSpending:           misc,
		DebtPaid:               debtPaid,
		SavingsDeposited:       deposited,
		SavingsBalance:         balance,
		FixedCosts:             fixed,
		WeeklyDebtContribution: contribution,
		TotalActualSpending:    actual,
		TotalPlannedSpending:   planned,
		FinancialStatus:        status,
		DisposableForDebts:     disposable,
		TotalDebt:              TotalRemainingDebt(in.Debts),
		MonthlyIncomeEstimate:  estimate,
	}
}
