package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNotPositive        = errors.New("the amount must be larger than zero")
	ErrLogKindInvalid           = errors.New("the log kind must be one of income, food, misc")
	ErrSavingsTypeInvalid       = errors.New("the savings transaction type must be one of deposit, withdrawal")
	ErrRepaymentTypeInvalid     = errors.New("the repayment type must be one of fixed, flexible")
	ErrWithdrawalReasonRequired = errors.New("a withdrawal from a debt requires a reason")
	ErrWithdrawalExceedsPaid    = errors.New("the withdrawal must not exceed the amount already paid")
	ErrWithdrawalExceedsBalance = errors.New("the withdrawal must not exceed the savings balance")
	ErrDebtTotalNotPositive     = errors.New("the total amount of a debt must be larger than zero")
	ErrGoalAmountNotPositive    = errors.New("goal amounts must be larger than zero")
	ErrStrategyEndBeforeStart   = errors.New("the end date of a strategy must be after its start date")
	ErrBudgetAmountNegative     = errors.New("budget amounts must not be negative")
)
