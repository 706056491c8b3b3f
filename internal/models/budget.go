package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget holds the planned weekly amounts for the two variable spending
// ledgers. There is exactly one budget row; actual spending is compared
// against it per period.
type Budget struct {
	DefaultModel
	Food decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Misc decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.Food.IsNegative() || b.Misc.IsNegative() {
		return ErrBudgetAmountNegative
	}

	return nil
}

// DefaultBudget returns the initial planned weekly amounts.
func DefaultBudget() Budget {
	return Budget{
		Food: decimal.NewFromInt(315000),
		Misc: decimal.NewFromInt(100000),
	}
}

// CurrentBudget loads the budget row, creating it with defaults on first use.
func CurrentBudget(db *gorm.DB) (Budget, error) {
	var budget Budget

	err := db.First(&budget).Error
	if err == nil {
		return budget, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return Budget{}, err
	}

	budget = DefaultBudget()
	err = db.Create(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	return budget, nil
}
