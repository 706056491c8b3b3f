package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/engine"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterSavingsRoutes registers the routes for savings transactions
// with the RouterGroup that is passed.
func RegisterSavingsRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSavingsList)
		r.GET("", GetSavingsTransactions)
		r.POST("", CreateSavingsTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsSavingsDetail)
		r.GET("/:id", GetSavingsTransaction)
		r.DELETE("/:id", DeleteSavingsTransaction)
	}
}

func OptionsSavingsList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

func OptionsSavingsDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.SavingsTransaction{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("allow", "GET, DELETE")
	c.Status(http.StatusNoContent)
}

// CreateSavingsTransactions creates savings transactions. A withdrawal
// that exceeds the balance over the full history is rejected, the
// envelope can not go negative.
func CreateSavingsTransactions(c *gin.Context) {
	var editables []SavingsTransactionEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsTransactionCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SavingsTransactionCreateResponse{}

	for _, editable := range editables {
		transaction := editable.model()

		if transaction.Type == models.SavingsWithdrawal {
			var history []models.SavingsTransaction
			err = models.DB.Find(&history).Error
			if err != nil {
				status = r.appendError(err, status)
				continue
			}

			balance := engine.SavingsBalance(history)
			if transaction.Amount.GreaterThan(balance) {
				status = r.appendError(models.ErrWithdrawalExceedsBalance, status)
				continue
			}
		}

		err = models.DB.Create(&transaction).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newSavingsTransaction(c, transaction)
		r.Data = append(r.Data, SavingsTransactionResponse{Data: &data})
	}

	c.JSON(status, r)
}

func GetSavingsTransactions(c *gin.Context) {
	var filter SavingsTransactionQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Order("date DESC").
		Where(&filterModel, queryFields...)

	if filter.Note != "" {
		q = q.Where("note LIKE ?", fmt.Sprintf("%%%s%%", filter.Note))
	} else if slices.Contains(setFields, "Note") {
		q = q.Where("note = ''")
	}

	q = searchFilter(models.DB, q, filter.Search, "note")

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 transactions and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var transactions []models.SavingsTransaction
	err := q.Find(&transactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsTransactionListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsTransactionListResponse{Error: &s})
		return
	}

	// The balance is always computed over the full history, not the page
	var history []models.SavingsTransaction
	err = models.DB.Find(&history).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsTransactionListResponse{Error: &s})
		return
	}
	balance := engine.SavingsBalance(history)

	data := make([]SavingsTransaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newSavingsTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, SavingsTransactionListResponse{
		Data:    data,
		Balance: &balance,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

func GetSavingsTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsTransactionResponse{Error: &s})
		return
	}

	var transaction models.SavingsTransaction
	err = models.DB.First(&transaction, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsTransactionResponse{Error: &s})
		return
	}

	data := newSavingsTransaction(c, transaction)
	c.JSON(http.StatusOK, SavingsTransactionResponse{Data: &data})
}

func DeleteSavingsTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var transaction models.SavingsTransaction
	err = models.DB.First(&transaction, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
