package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterLogEntryRoutes registers the routes for log entries with
// the RouterGroup that is passed.
func RegisterLogEntryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsLogEntryList)
		r.GET("", GetLogEntries)
		r.POST("", CreateLogEntries)
	}

	// Log entry with ID
	{
		r.OPTIONS("/:id", OptionsLogEntryDetail)
		r.GET("/:id", GetLogEntry)
		r.PATCH("/:id", UpdateLogEntry)
		r.DELETE("/:id", DeleteLogEntry)
	}
}

func OptionsLogEntryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

func OptionsLogEntryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.LogEntry{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

func CreateLogEntries(c *gin.Context) {
	var editables []LogEntryEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LogEntryCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := LogEntryCreateResponse{}

	for _, editable := range editables {
		entry := editable.model()

		err = models.DB.Create(&entry).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newLogEntry(c, entry)
		r.Data = append(r.Data, LogEntryResponse{Data: &data})
	}

	c.JSON(status, r)
}

func GetLogEntries(c *gin.Context) {
	var filter LogEntryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Order("date DESC").
		Where(&filterModel, queryFields...)

	q = nameFilter(q, setFields, filter.Name)
	q = searchFilter(models.DB, q, filter.Search, "name")

	if filter.From != "" {
		from, err := time.Parse("2006-01-02", filter.From)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), LogEntryListResponse{Error: &s})
			return
		}
		q = q.Where("date >= ?", from)
	}

	if filter.Until != "" {
		until, err := time.Parse("2006-01-02", filter.Until)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), LogEntryListResponse{Error: &s})
			return
		}
		q = q.Where("date <= ?", until.AddDate(0, 0, 1))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 entries and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var entries []models.LogEntry
	err := q.Find(&entries).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LogEntryListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LogEntryListResponse{Error: &s})
		return
	}

	data := make([]LogEntry, 0, len(entries))
	for _, entry := range entries {
		data = append(data, newLogEntry(c, entry))
	}

	c.JSON(http.StatusOK, LogEntryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

func GetLogEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LogEntryResponse{Error: &s})
		return
	}

	var entry models.LogEntry
	err = models.DB.First(&entry, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LogEntryResponse{Error: &s})
		return
	}

	data := newLogEntry(c, entry)
	c.JSON(http.StatusOK, LogEntryResponse{Data: &data})
}

func UpdateLogEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LogEntryResponse{Error: &s})
		return
	}

	var entry models.LogEntry
	err = models.DB.First(&entry, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LogEntryResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, LogEntryEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LogEntryResponse{Error: &s})
		return
	}

	var data LogEntryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LogEntryResponse{Error: &s})
		return
	}

	err = models.DB.Model(&entry).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LogEntryResponse{Error: &s})
		return
	}

	r := newLogEntry(c, entry)
	c.JSON(http.StatusOK, LogEntryResponse{Data: &r})
}

func DeleteLogEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var entry models.LogEntry
	err = models.DB.First(&entry, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&entry).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
