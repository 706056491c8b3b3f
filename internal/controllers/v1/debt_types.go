package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

// DebtEditable represents all user configurable parameters
type DebtEditable struct {
	Name               string               `json:"name" example:"Motorbike loan" default:""`
	Source             string               `json:"source" example:"Family" default:""` // Who the money is owed to
	TotalAmount        decimal.Decimal      `json:"totalAmount" example:"5000000"`
	DueDate            time.Time            `json:"dueDate" example:"2025-12-10T00:00:00Z"`
	StartDate          time.Time            `json:"startDate" example:"2025-11-01T00:00:00Z"`
	RepaymentType      models.RepaymentType `json:"repaymentType" example:"flexible" default:"flexible"` // One of fixed, flexible
	MonthlyInstallment decimal.Decimal      `json:"monthlyInstallment" example:"0"`                      // Only meaningful for fixed repayment
	BNPL               bool                 `json:"bnpl" example:"false" default:"false"`                // Buy-now-pay-later, excluded from spending sums
	TargetMonth        types.Month          `json:"targetMonth" example:"2025-12"`                       // The month the debt is grouped under
}

func (editable DebtEditable) model() models.Debt {
	return models.Debt{
		Name:               editable.Name,
		Source:             editable.Source,
		TotalAmount:        editable.TotalAmount,
		DueDate:            editable.DueDate,
		StartDate:          editable.StartDate,
		RepaymentType:      editable.RepaymentType,
		MonthlyInstallment: editable.MonthlyInstallment,
		BNPL:               editable.BNPL,
		TargetMonth:        editable.TargetMonth,
	}
}

// DebtCreateRequest is one creation instruction. Besides the standalone
// mode it can expand into a recurring series or a BNPL bill.
type DebtCreateRequest struct {
	DebtEditable

	// Recurrence turns the request into a series of debts, one per
	// period from DueDate until RecurrenceEnd. One of weekly, monthly.
	Recurrence    string    `json:"recurrence" example:"monthly" default:""`
	RecurrenceEnd time.Time `json:"recurrenceEnd" example:"2026-03-01T00:00:00Z"`

	// BNPLBillMonth turns the request into a pay-later bill for that
	// month: one fixed debt due on the 10th of the following month.
	BNPLBillMonth types.Month `json:"bnplBillMonth" example:"2025-11"`
}

const maxSeriesOccurrences = 52

// expand returns the debts this request creates.
func (r DebtCreateRequest) expand() ([]models.Debt, error) {
	if !r.BNPLBillMonth.IsZero() {
		return []models.Debt{r.bnplBill()}, nil
	}

	if r.Recurrence != "" {
		return r.series()
	}

	return []models.Debt{r.model()}, nil
}

// bnplBill builds the single fixed debt for a pay-later bill. The bill
// for one month falls due on the 10th of the next month.
func (r DebtCreateRequest) bnplBill() models.Debt {
	due := time.Date(r.BNPLBillMonth.Year(), r.BNPLBillMonth.Month()+1, 10, 0, 0, 0, 0, time.UTC)

	name := r.Name
	if name == "" {
		name = fmt.Sprintf("SPayLater T%d/%d", r.BNPLBillMonth.Month(), r.BNPLBillMonth.Year())
	}

	source := r.Source
	if source == "" {
		source = "Shopee"
	}

	return models.Debt{
		Name:               name,
		Source:             source,
		TotalAmount:        r.TotalAmount,
		DueDate:            due,
		RepaymentType:      models.RepaymentFixed,
		MonthlyInstallment: r.TotalAmount,
		BNPL:               true,
		TargetMonth:        r.BNPLBillMonth,
	}
}

// series builds one debt per period from DueDate until RecurrenceEnd,
// numbering weekly occurrences and labelling monthly ones by month.
func (r DebtCreateRequest) series() ([]models.Debt, error) {
	if r.Recurrence != "weekly" && r.Recurrence != "monthly" {
		return nil, errRecurrenceInvalid
	}

	debts := make([]models.Debt, 0)
	count := 1

	for current := r.DueDate; !current.After(r.RecurrenceEnd); count++ {
		if count > maxSeriesOccurrences {
			return nil, errOccurrencesInvalid
		}

		debt := r.model()
		debt.DueDate = current
		debt.TargetMonth = types.MonthOf(current)

		if r.Recurrence == "monthly" {
			debt.Name = fmt.Sprintf("%s (T%d)", r.Name, current.Month())
			current = current.AddDate(0, 1, 0)
		} else {
			debt.Name = fmt.Sprintf("%s (Ky %d)", r.Name, count)
			current = current.AddDate(0, 0, 7)
		}

		debts = append(debts, debt)
	}

	if len(debts) == 0 {
		return nil, errOccurrencesInvalid
	}

	return debts, nil
}

type DebtLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/debts/a3d0b644-76a7-4de6-b98b-1f8aba1a0741"`
	Payments     string `json:"payments" example:"https://example.com/v1/debts/a3d0b644-76a7-4de6-b98b-1f8aba1a0741/payments"`
	Withdrawals  string `json:"withdrawals" example:"https://example.com/v1/debts/a3d0b644-76a7-4de6-b98b-1f8aba1a0741/withdrawals"`
}

type Debt struct {
	models.DefaultModel
	DebtEditable
	Links DebtLinks `json:"links"`

	// These fields are computed
	AmountPaid   decimal.Decimal    `json:"amountPaid" example:"1000000"`
	Remaining    decimal.Decimal    `json:"remaining" example:"4000000"`
	Active       bool               `json:"active" example:"true"`
	DaysUntilDue int                `json:"daysUntilDue" example:"14"` // Negative when overdue
	WeeklyNeed   decimal.Decimal    `json:"weeklyNeed" example:"2000000"`
	Suggestion   string             `json:"suggestion" example:"keep contributing steadily"`
	Transactions []DebtTransaction  `json:"transactions"`
}

func newDebt(c *gin.Context, model models.Debt, disposable decimal.Decimal, now time.Time) Debt {
	debt := Debt{
		DefaultModel: model.DefaultModel,
		DebtEditable: DebtEditable{
			Name:               model.Name,
			Source:             model.Source,
			TotalAmount:        model.TotalAmount,
			DueDate:            model.DueDate,
			StartDate:          model.StartDate,
			RepaymentType:      model.RepaymentType,
			MonthlyInstallment: model.MonthlyInstallment,
			BNPL:               model.BNPL,
			TargetMonth:        model.TargetMonth,
		},
		Links: DebtLinks{
			Self:        fmt.Sprintf("%s/debts/%s", httputil.RequestPathV1(c), model.ID),
			Payments:    fmt.Sprintf("%s/debts/%s/payments", httputil.RequestPathV1(c), model.ID),
			Withdrawals: fmt.Sprintf("%s/debts/%s/withdrawals", httputil.RequestPathV1(c), model.ID),
		},
		AmountPaid:   model.AmountPaid,
		Remaining:    model.Remaining(),
		Active:       model.Active(),
		DaysUntilDue: model.DaysUntilDue(now),
		WeeklyNeed:   model.WeeklyNeed(now),
		Transactions: make([]DebtTransaction, 0, len(model.Transactions)),
	}

	if suggestion, ok := model.Suggestion(disposable, now); ok {
		debt.Suggestion = string(suggestion)
	}

	for _, transaction := range model.Transactions {
		debt.Transactions = append(debt.Transactions, newDebtTransaction(transaction))
	}

	return debt
}

type DebtTransaction struct {
	models.DefaultModel
	Date   time.Time                  `json:"date" example:"2025-11-24T12:00:00Z"`
	Amount decimal.Decimal            `json:"amount" example:"500000"`
	Type   models.DebtTransactionType `json:"type" example:"payment"` // One of payment, withdrawal
	Reason string                     `json:"reason" example:"refunded deposit"`
}

func newDebtTransaction(model models.DebtTransaction) DebtTransaction {
	return DebtTransaction{
		DefaultModel: model.DefaultModel,
		Date:         model.Date,
		Amount:       model.Amount,
		Type:         model.Type,
		Reason:       model.Reason,
	}
}

// DebtPaymentEditable is the body for recording a payment.
type DebtPaymentEditable struct {
	Amount decimal.Decimal `json:"amount" example:"500000"`
	Date   time.Time       `json:"date" example:"2025-11-24T12:00:00Z"` // Defaults to now
}

// DebtWithdrawalEditable is the body for reversing part of the paid amount.
type DebtWithdrawalEditable struct {
	Amount decimal.Decimal `json:"amount" example:"200000"`
	Reason string          `json:"reason" example:"refunded deposit"`
	Date   time.Time       `json:"date" example:"2025-11-24T12:00:00Z"` // Defaults to now
}

type DebtListResponse struct {
	Data       []Debt      `json:"data"` // List of debts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"`
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type DebtCreateResponse struct {
	Data  []DebtResponse `json:"data"` // The created debts or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"`
}

func (r *DebtCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, DebtResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DebtResponse struct {
	Data  *Debt   `json:"data"` // Data for the debt
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type DebtQueryFilter struct {
	Source      string `form:"source" filterField:"false"`      // By source
	Name        string `form:"name" filterField:"false"`        // By name
	Match       string `form:"match" filterField:"false"`       // Glob pattern matched against name and source
	State       string `form:"state" filterField:"false"`       // One of active, completed
	TargetMonth string `form:"targetMonth" filterField:"false"` // By target month (YYYY-MM)
	BNPL        bool   `form:"bnpl"`                            // Is the debt a pay-later debt?
	Search      string `form:"search" filterField:"false"`      // Search for this text in name and source
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first debt returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of debts to return. Defaults to 50.
}

func (f DebtQueryFilter) model() models.Debt {
	return models.Debt{
		BNPL: f.BNPL,
	}
}
