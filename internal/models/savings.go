package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsTransactionType is the direction of a savings transaction.
type SavingsTransactionType string

const (
	SavingsDeposit    SavingsTransactionType = "deposit"
	SavingsWithdrawal SavingsTransactionType = "withdrawal"
)

// SavingsTransaction is a deposit to or withdrawal from the savings fund.
// The savings balance is always recomputed from the full history so that
// deleting a transaction correctly undoes its effect.
type SavingsTransaction struct {
	DefaultModel
	Date   time.Time
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Type   SavingsTransactionType
	Note   string
}

func (s *SavingsTransaction) BeforeSave(_ *gorm.DB) error {
	s.Note = strings.TrimSpace(s.Note)

	if s.Date.IsZero() {
		s.Date = time.Now().In(time.UTC)
	} else {
		s.Date = s.Date.In(time.UTC)
	}

	if !s.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	switch s.Type {
	case SavingsDeposit, SavingsWithdrawal:
	default:
		return ErrSavingsTypeInvalid
	}

	return nil
}

func (s *SavingsTransaction) AfterFind(tx *gorm.DB) error {
	err := s.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	s.Date = s.Date.In(time.UTC)
	return nil
}
