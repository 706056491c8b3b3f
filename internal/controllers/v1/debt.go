package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/engine"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterDebtRoutes registers the routes for debts with
// the RouterGroup that is passed.
func RegisterDebtRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDebtList)
		r.GET("", GetDebts)
		r.POST("", CreateDebts)
	}

	// Debt with ID
	{
		r.OPTIONS("/:id", OptionsDebtDetail)
		r.GET("/:id", GetDebt)
		r.PATCH("/:id", UpdateDebt)
		r.DELETE("/:id", DeleteDebt)
	}

	// Ledger operations
	{
		r.OPTIONS("/:id/payments", httputil.OptionsPost)
		r.POST("/:id/payments", CreateDebtPayment)
		r.OPTIONS("/:id/withdrawals", httputil.OptionsPost)
		r.POST("/:id/withdrawals", CreateDebtWithdrawal)
	}
}

func OptionsDebtList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

func OptionsDebtDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Debt{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// currentDisposable computes the disposable income for this week, the
// reference for contribution suggestions.
func currentDisposable(now time.Time) (decimal.Decimal, error) {
	var logs []models.LogEntry
	if err := models.DB.Find(&logs).Error; err != nil {
		return decimal.Zero, err
	}

	year, week := types.WeekOf(now)
	filter := types.Filter{Type: types.FilterWeek, Year: year, Week: week}

	income := engine.SumLogs(logs, filter, models.LogIncome)
	food := engine.SumLogs(logs, filter, models.LogFood)
	misc := engine.SumLogs(logs, filter, models.LogMisc)

	return income.Sub(engine.DefaultFixedCosts().Add(food).Add(misc)), nil
}

func CreateDebts(c *gin.Context) {
	var requests []DebtCreateRequest

	// Bind data and return error if not possible
	err := httputil.BindData(c, &requests)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtCreateResponse{
			Error: &e,
		})
		return
	}

	disposable, err := currentDisposable(time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := DebtCreateResponse{}

	for _, request := range requests {
		debts, err := request.expand()
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		for _, debt := range debts {
			err = models.DB.Create(&debt).Error
			if err != nil {
				status = r.appendError(err, status)
				continue
			}

			data := newDebt(c, debt, disposable, time.Now())
			r.Data = append(r.Data, DebtResponse{Data: &data})
		}
	}

	c.JSON(status, r)
}

func GetDebts(c *gin.Context) {
	var filter DebtQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Preload("Transactions").
		Order("due_date ASC").
		Where(&filterModel, queryFields...)

	q = nameFilter(q, setFields, filter.Name)
	q = searchFilter(models.DB, q, filter.Search, "name", "source")

	if filter.Source != "" {
		q = q.Where("source LIKE ?", "%"+filter.Source+"%")
	}

	if filter.TargetMonth != "" {
		month, err := types.ParseMonth(filter.TargetMonth)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), DebtListResponse{Error: &s})
			return
		}
		q = q.Where("target_month = ?", month)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 debts and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var debts []models.Debt
	err := q.Find(&debts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtListResponse{Error: &s})
		return
	}

	// State and glob filters work on the loaded records
	debts = matchDebts(debts, filter.Match)
	if filter.State != "" {
		filtered := make([]models.Debt, 0, len(debts))
		for _, debt := range debts {
			if (filter.State == "active") == debt.Active() {
				filtered = append(filtered, debt)
			}
		}
		debts = filtered
	}

	now := time.Now()
	disposable, err := currentDisposable(now)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtListResponse{Error: &s})
		return
	}

	data := make([]Debt, 0, len(debts))
	for _, debt := range debts {
		data = append(data, newDebt(c, debt, disposable, now))
	}

	c.JSON(http.StatusOK, DebtListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

func GetDebt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	var debt models.Debt
	err = models.DB.Preload("Transactions").First(&debt, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	now := time.Now()
	disposable, err := currentDisposable(now)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	data := newDebt(c, debt, disposable, now)
	c.JSON(http.StatusOK, DebtResponse{Data: &data})
}

func UpdateDebt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	var debt models.Debt
	err = models.DB.Preload("Transactions").First(&debt, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DebtEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	var data DebtEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	err = models.DB.Model(&debt).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	now := time.Now()
	disposable, err := currentDisposable(now)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	r := newDebt(c, debt, disposable, now)
	c.JSON(http.StatusOK, DebtResponse{Data: &r})
}

func DeleteDebt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var debt models.Debt
	err = models.DB.First(&debt, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&debt).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// CreateDebtPayment records a payment towards a debt.
func CreateDebtPayment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	var debt models.Debt
	err = models.DB.Preload("Transactions").First(&debt, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	var editable DebtPaymentEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	date := editable.Date
	if date.IsZero() {
		date = time.Now().In(time.UTC)
	}

	err = debt.RecordPayment(editable.Amount, date)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	err = models.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(&debt).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	now := time.Now()
	disposable, err := currentDisposable(now)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	data := newDebt(c, debt, disposable, now)
	c.JSON(http.StatusCreated, DebtResponse{Data: &data})
}

// CreateDebtWithdrawal reverses part of the paid amount of a debt.
func CreateDebtWithdrawal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	var debt models.Debt
	err = models.DB.Preload("Transactions").First(&debt, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	var editable DebtWithdrawalEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	date := editable.Date
	if date.IsZero() {
		date = time.Now().In(time.UTC)
	}

	err = debt.RecordWithdrawal(editable.Amount, editable.Reason, date)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	err = models.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(&debt).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	now := time.Now()
	disposable, err := currentDisposable(now)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{Error: &s})
		return
	}

	data := newDebt(c, debt, disposable, now)
	c.JSON(http.StatusCreated, DebtResponse{Data: &data})
}
