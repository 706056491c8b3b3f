package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LogKind distinguishes the three ledgers an entry can belong to.
type LogKind string

const (
	LogIncome LogKind = "income"
	LogFood   LogKind = "food"
	LogMisc   LogKind = "misc"
)

// LogEntry is a single dated amount in one of the income, food or misc
// ledgers. Negative amounts are manual corrections.
type LogEntry struct {
	DefaultModel
	Kind   LogKind         `gorm:"index"`
	Name   string          // Optional label, mostly used for misc expenses
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date   time.Time

	// SavingsWithdrawal marks income entries that were created by
	// withdrawing from savings. They count as spendable income but are
	// excluded from the monthly income estimate.
	SavingsWithdrawal bool
}

// BeforeSave defaults the date to now and enforces UTC storage.
func (l *LogEntry) BeforeSave(_ *gorm.DB) error {
	l.Name = strings.TrimSpace(l.Name)

	if l.Date.IsZero() {
		l.Date = time.Now().In(time.UTC)
	} else {
		l.Date = l.Date.In(time.UTC)
	}

	switch l.Kind {
	case LogIncome, LogFood, LogMisc:
	default:
		return ErrLogKindInvalid
	}

	return nil
}

// AfterFind enforces dates to be in UTC.
func (l *LogEntry) AfterFind(tx *gorm.DB) error {
	err := l.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	l.Date = l.Date.In(time.UTC)
	return nil
}
