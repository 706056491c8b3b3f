package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Strategy is the durable assumption set for a financial plan: recurring
// weekly amounts, a date range and a list of savings goals.
//
// Only the configuration persists. The week-by-week plan is recomputed
// from the live debt set and savings balance on every read, so reopening
// a plan reflects reality instead of the numbers at authoring time.
type Strategy struct {
	DefaultModel
	Name         string
	StartDate    time.Time
	EndDate      time.Time
	WeeklyIncome decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	WeeklyFood   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	WeeklyMisc   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Goals        []StrategyGoal  `gorm:"constraint:OnDelete:CASCADE"`
}

// StrategyGoal is a named savings target within a strategy.
type StrategyGoal struct {
	DefaultModel
	StrategyID uuid.UUID `gorm:"index"`
	Name       string
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (s *Strategy) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)

	s.StartDate = s.StartDate.In(time.UTC)
	s.EndDate = s.EndDate.In(time.UTC)

	if !s.EndDate.After(s.StartDate) {
		return ErrStrategyEndBeforeStart
	}

	return nil
}

func (s *Strategy) AfterFind(tx *gorm.DB) error {
	err := s.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	s.StartDate = s.StartDate.In(time.UTC)
	s.EndDate = s.EndDate.In(time.UTC)
	return nil
}

func (g *StrategyGoal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)

	if !g.Amount.IsPositive() {
		return ErrGoalAmountNotPositive
	}

	return nil
}
