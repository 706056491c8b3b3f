package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RepaymentType determines how a debt is expected to be serviced.
type RepaymentType string

const (
	// RepaymentFixed is a constant monthly installment, independent of
	// the remaining balance.
	RepaymentFixed RepaymentType = "fixed"

	// RepaymentFlexible has no installment; the weekly need is derived
	// from the remaining balance and the time left until the due date.
	RepaymentFlexible RepaymentType = "flexible"
)

// Debt is a liability with a due date and an append-only transaction log.
//
// A debt is active while AmountPaid < TotalAmount. It is never deleted
// automatically: when fully paid it stays in storage as history.
type Debt struct {
	DefaultModel
	Name               string
	Source             string // Free-text origin or lender
	TotalAmount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	AmountPaid         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DueDate            time.Time
	StartDate          time.Time // When the loan was taken out
	RepaymentType      RepaymentType
	MonthlyInstallment decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Only meaningful for fixed repayment

	// BNPL marks buy-now-pay-later debts. Their repayments are excluded
	// from spending totals because the originating purchase was already
	// expensed as food/misc; settling the balance is not a new expense.
	BNPL bool

	// TargetMonth is the budget period this debt is grouped under for
	// display. It is independent of the due date.
	TargetMonth types.Month

	Transactions []DebtTransaction `gorm:"constraint:OnDelete:CASCADE"`
}

// DebtTransactionType is the direction of a debt transaction.
type DebtTransactionType string

const (
	DebtPayment    DebtTransactionType = "payment"
	DebtWithdrawal DebtTransactionType = "withdrawal"
)

// DebtTransaction is one entry in a debt's append-only history.
// Withdrawals are corrections or refunds and always carry a reason.
type DebtTransaction struct {
	DefaultModel
	DebtID uuid.UUID `gorm:"index"`
	Date   time.Time
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Type   DebtTransactionType
	Reason string
}

func (d *Debt) BeforeSave(_ *gorm.DB) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Source = strings.TrimSpace(d.Source)

	if d.DueDate.IsZero() {
		d.DueDate = time.Now().In(time.UTC)
	} else {
		d.DueDate = d.DueDate.In(time.UTC)
	}

	if d.StartDate.IsZero() {
		d.StartDate = time.Now().In(time.UTC)
	} else {
		d.StartDate = d.StartDate.In(time.UTC)
	}

	// Debts default to the budget period their due date falls in
	if d.TargetMonth.IsZero() {
		d.TargetMonth = types.MonthOf(d.DueDate)
	}

	switch d.RepaymentType {
	case RepaymentFixed, RepaymentFlexible:
	default:
		return ErrRepaymentTypeInvalid
	}

	if !d.TotalAmount.IsPositive() {
		return ErrDebtTotalNotPositive
	}

	return nil
}

func (d *Debt) AfterFind(tx *gorm.DB) error {
	err := d.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	d.DueDate = d.DueDate.In(time.UTC)
	d.StartDate = d.StartDate.In(time.UTC)
	return nil
}

func (t *DebtTransaction) BeforeSave(_ *gorm.DB) error {
	t.Reason = strings.TrimSpace(t.Reason)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// Remaining returns the balance still owed.
func (d Debt) Remaining() decimal.Decimal {
	return d.TotalAmount.Sub(d.AmountPaid)
}

// Active reports whether the debt still has a balance to pay off.
func (d Debt) Active() bool {
	return d.AmountPaid.LessThan(d.TotalAmount)
}

// DaysUntilDue returns the number of days until the due date, comparing
// dates only. A negative value means the debt is overdue by that many days.
func (d Debt) DaysUntilDue(asOf time.Time) int {
	return types.DaysBetween(asOf, d.DueDate)
}

// WeeklyNeed returns the amount to set aside per week to settle the
// remaining balance by the due date. It is derived fresh on every call,
// so it steepens as the due date approaches or the balance grows.
//
// Fixed-repayment debts have no weekly need; callers display the monthly
// installment instead.
func (d Debt) WeeklyNeed(asOf time.Time) decimal.Decimal {
	if d.RepaymentType == RepaymentFixed || !d.Active() {
		return decimal.Zero
	}

	weeks := ceilDiv(d.DaysUntilDue(asOf), 7)
	if weeks < 1 {
		weeks = 1
	}

	return d.Remaining().Div(decimal.NewFromInt(int64(weeks)))
}

// RecordPayment appends a payment transaction and increases AmountPaid.
//
// Payments may overshoot the total amount; the surplus is visible in the
// history and the debt simply reads as completed.
func (d *Debt) RecordPayment(amount decimal.Decimal, date time.Time) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}

	d.AmountPaid = d.AmountPaid.Add(amount)
	d.Transactions = append(d.Transactions, DebtTransaction{
		DebtID: d.ID,
		Date:   date,
		Amount: amount,
		Type:   DebtPayment,
	})

	return nil
}

// RecordWithdrawal reverses part of the paid amount, for example for a
// refund or a recording mistake. It requires a reason and must not drive
// AmountPaid below zero; invalid withdrawals leave the debt unchanged.
func (d *Debt) RecordWithdrawal(amount decimal.Decimal, reason string, date time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return ErrWithdrawalReasonRequired
	}

	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if amount.GreaterThan(d.AmountPaid) {
		return ErrWithdrawalExceedsPaid
	}

	d.AmountPaid = d.AmountPaid.Sub(amount)
	d.Transactions = append(d.Transactions, DebtTransaction{
		DebtID: d.ID,
		Date:   date,
		Amount: amount,
		Type:   DebtWithdrawal,
		Reason: strings.TrimSpace(reason),
	})

	return nil
}

// DebtSuggestion is an advisory hint on how to contribute to a debt.
// It never gates any operation.
type DebtSuggestion string

const (
	SuggestionPause         DebtSuggestion = "income is low right now, pause contributions"
	SuggestionFixedSchedule DebtSuggestion = "fixed schedule, do not miss the due date"
	SuggestionRaise         DebtSuggestion = "surplus available, raise the contribution"
	SuggestionKeepGoing     DebtSuggestion = "keep contributing steadily"
)

// Suggestion returns contribution advice for the given disposable income.
// The second return value is false for completed debts.
func (d Debt) Suggestion(disposable decimal.Decimal, asOf time.Time) (DebtSuggestion, bool) {
	if !d.Active() {
		return "", false
	}

	if !disposable.IsPositive() {
		return SuggestionPause, true
	}

	if d.RepaymentType == RepaymentFixed {
		return SuggestionFixedSchedule, true
	}

	if disposable.GreaterThan(d.WeeklyNeed(asOf).Mul(decimal.NewFromInt(2))) {
		return SuggestionRaise, true
	}

	return SuggestionKeepGoing, true
}

// ceilDiv divides and rounds towards positive infinity.
func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}

	return (a + b - 1) / b
}
