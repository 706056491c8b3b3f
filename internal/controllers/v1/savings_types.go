package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"github.com/shopspring/decimal"
)

// SavingsTransactionEditable represents all user configurable parameters
type SavingsTransactionEditable struct {
	Date   time.Time                     `json:"date" example:"2025-11-24T12:00:00Z"` // Date of the transaction, defaults to now
	Amount decimal.Decimal               `json:"amount" example:"200000"`             // Amount moved, must be positive
	Type   models.SavingsTransactionType `json:"type" example:"deposit"`              // One of deposit, withdrawal
	Note   string                        `json:"note" example:"Leftover cash" default:""`
}

func (editable SavingsTransactionEditable) model() models.SavingsTransaction {
	return models.SavingsTransaction{
		Date:   editable.Date,
		Amount: editable.Amount,
		Type:   editable.Type,
		Note:   editable.Note,
	}
}

type SavingsTransactionLinks struct {
	Self string `json:"self" example:"https://example.com/v1/savings/10e2fbe9-c2eb-4a6b-9ab4-06d14607dd17"` // The transaction itself
}

type SavingsTransaction struct {
	models.DefaultModel
	SavingsTransactionEditable
	Links SavingsTransactionLinks `json:"links"`
}

func newSavingsTransaction(c *gin.Context, model models.SavingsTransaction) SavingsTransaction {
	return SavingsTransaction{
		DefaultModel: model.DefaultModel,
		SavingsTransactionEditable: SavingsTransactionEditable{
			Date:   model.Date,
			Amount: model.Amount,
			Type:   model.Type,
			Note:   model.Note,
		},
		Links: SavingsTransactionLinks{
			Self: fmt.Sprintf("%s/savings/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type SavingsTransactionListResponse struct {
	Data       []SavingsTransaction `json:"data"`    // List of transactions
	Balance    *decimal.Decimal     `json:"balance"` // Balance over the full history
	Error      *string              `json:"error" example:"the specified resource ID is not a valid UUID"`
	Pagination *Pagination          `json:"pagination"` // Pagination information
}

type SavingsTransactionCreateResponse struct {
	Data  []SavingsTransactionResponse `json:"data"` // The created transactions or their respective error
	Error *string                      `json:"error" example:"the specified resource ID is not a valid UUID"`
}

func (r *SavingsTransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, SavingsTransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SavingsTransactionResponse struct {
	Data  *SavingsTransaction `json:"data"` // Data for the transaction
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type SavingsTransactionQueryFilter struct {
	Type   string `form:"type"`                       // By type
	Note   string `form:"note" filterField:"false"`   // By note
	Search string `form:"search" filterField:"false"` // Search for this text in the note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first transaction returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of transactions to return. Defaults to 50.
}

func (f SavingsTransactionQueryFilter) model() models.SavingsTransaction {
	return models.SavingsTransaction{
		Type: models.SavingsTransactionType(f.Type),
	}
}
