package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Purchase categories.
const (
	CategoryShortTerm  = "short-term"
	CategoryLongTerm   = "long-term"
	CategoryExperience = "experience"
)

// Purchase urgency levels.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// Payment methods.
const (
	MethodFull        = "full"
	MethodInstallment = "installment"
)

// Verdicts.
const (
	VerdictApproved = "approved"
	VerdictConsider = "consider"
	VerdictRejected = "rejected"
)

// Risk levels.
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

// Leaving less than this much cash after a full payment counts as
// draining the buffer.
var minCashBuffer = decimal.NewFromInt(500000)

// Taking on installments past this share of monthly income is refused.
var maxDebtRatioPercent = decimal.NewFromInt(35)

// PurchaseScenario describes a purchase the caller is weighing up.
type PurchaseScenario struct {
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	Urgency         string          `json:"urgency"`
	Method          string          `json:"method"`
	InstallmentTerm int             `json:"installmentTerm"`
	MonthlyPayment  decimal.Decimal `json:"monthlyPayment"`
}

// PurchaseAnalysis is the advisory result for a scenario.
type PurchaseAnalysis struct {
	Score           int      `json:"score"`
	Verdict         string   `json:"verdict"`
	RiskLevel       string   `json:"riskLevel"`
	Messages        []string `json:"messages"`
	FinancialImpact string   `json:"financialImpact"`
}

// Analyze scores a purchase scenario against the caller's current
// finances. Scores start at 50; affordability and debt load move it
// first, then urgency and durability. 80 and up is approved, 40 and
// below is rejected, anything between stays a consider.
func Analyze(s PurchaseScenario, disposable, totalDebt, monthlyIncome decimal.Decimal) PurchaseAnalysis {
	score := 50
	verdict := VerdictConsider
	risk := RiskLow
	impact := ""
	msgs := make([]string, 0)

	if s.Method == MethodFull {
		surplus := disposable.Sub(s.Price)

		switch {
		case surplus.IsNegative():
			score = 0
			verdict = VerdictRejected
			risk = RiskCritical
			msgs = append(msgs, fmt.Sprintf("Rejected: not enough disposable cash, short by %sđ. Buying this eats into food and rent money.", formatAmount(surplus.Abs())))
			impact = "Breaks the current budget."

		case surplus.LessThan(minCashBuffer) && s.Category != CategoryLongTerm:
			score -= 40
			verdict = VerdictRejected
			risk = RiskHigh
			msgs = append(msgs, "Red flag: this leaves less than 500.000đ of buffer. Any surprise expense becomes a crisis.")
			impact = fmt.Sprintf("Only %sđ left over.", formatAmount(surplus))

		default:
			score += 20
			msgs = append(msgs, "Finances allow paying in full right now.")
			if disposable.IsPositive() {
				share := s.Price.Div(disposable).Mul(decimal.NewFromInt(100)).Round(0)
				impact = fmt.Sprintf("Takes %s%% of the available balance.", share)
			}
		}
	} else {
		monthlyPay := s.MonthlyPayment
		if !monthlyPay.IsPositive() {
			term := s.InstallmentTerm
			if term < 1 {
				term = 1
			}
			monthlyPay = s.Price.Div(decimal.NewFromInt(int64(term)))
		}

		switch {
		case s.Category == CategoryShortTerm:
			score = 0
			verdict = VerdictRejected
			risk = RiskCritical
			msgs = append(msgs, "Never finance short-lived consumables. You would still be paying after the item has lost its use.")

		case debtRatio(totalDebt, s.Price, monthlyIncome).GreaterThan(maxDebtRatioPercent):
			score -= 50
			verdict = VerdictRejected
			risk = RiskHigh
			msgs = append(msgs, fmt.Sprintf("Debt warning: total debt would pass 35%% of monthly income (%s%%). Stop borrowing.", debtRatio(totalDebt, s.Price, monthlyIncome).Round(1)))

		default:
			score += 10
			impact = fmt.Sprintf("Adds %sđ/month for %d months.", formatAmount(monthlyPay), s.InstallmentTerm)
		}
	}

	if verdict != VerdictRejected {
		switch s.Urgency {
		case UrgencyHigh:
			score += 30
			msgs = append(msgs, "Urgent need, worth solving now.")
		case UrgencyLow:
			score -= 30
			msgs = append(msgs, "Not urgent. Apply the 48-hour rule and sleep on it.")
			if score < 50 {
				verdict = VerdictConsider
			}
		}

		if s.Category == CategoryLongTerm {
			score += 10
			msgs = append(msgs, "Durable item with long-term use.")
		}
	}

	if score >= 80 && verdict != VerdictRejected {
		verdict = VerdictApproved
	} else if score <= 40 {
		verdict = VerdictRejected
	}

	return PurchaseAnalysis{
		Score:           score,
		Verdict:         verdict,
		RiskLevel:       risk,
		Messages:        msgs,
		FinancialImpact: impact,
	}
}

func debtRatio(totalDebt, price, monthlyIncome decimal.Decimal) decimal.Decimal {
	if !monthlyIncome.IsPositive() {
		return decimal.NewFromInt(100)
	}

	return totalDebt.Add(price).Div(monthlyIncome).Mul(decimal.NewFromInt(100))
}
