package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/engine"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterHolidayRoutes registers the routes for holidays with
// the RouterGroup that is passed.
func RegisterHolidayRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsHolidayList)
		r.GET("", GetHolidays)
		r.POST("", CreateHolidays)
	}

	// Upcoming listing
	{
		r.OPTIONS("/upcoming", httputil.OptionsGet)
		r.GET("/upcoming", GetUpcomingHolidays)
	}

	// Holiday with ID
	{
		r.OPTIONS("/:id", OptionsHolidayDetail)
		r.GET("/:id", GetHoliday)
		r.PATCH("/:id", UpdateHoliday)
		r.DELETE("/:id", DeleteHoliday)
	}
}

func OptionsHolidayList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

func OptionsHolidayDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Holiday{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

func CreateHolidays(c *gin.Context) {
	var editables []HolidayEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HolidayCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := HolidayCreateResponse{}

	for _, editable := range editables {
		holiday := editable.model()

		err = models.DB.Create(&holiday).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newHoliday(c, holiday)
		r.Data = append(r.Data, HolidayResponse{Data: &data})
	}

	c.JSON(status, r)
}

func GetHolidays(c *gin.Context) {
	var filter HolidayQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Order("date ASC").
		Where(&filterModel, queryFields...)

	q = nameFilter(q, setFields, filter.Name)
	q = searchFilter(models.DB, q, filter.Search, "name", "note")

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 holidays and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var holidays []models.Holiday
	err := q.Find(&holidays).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HolidayListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HolidayListResponse{Error: &s})
		return
	}

	data := make([]Holiday, 0, len(holidays))
	for _, holiday := range holidays {
		data = append(data, newHoliday(c, holiday))
	}

	c.JSON(http.StatusOK, HolidayListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

func GetUpcomingHolidays(c *gin.Context) {
	var query UpcomingHolidayQuery
	_ = c.Bind(&query)

	var holidays []models.Holiday
	err := models.DB.Find(&holidays).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UpcomingHolidayListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, UpcomingHolidayListResponse{
		Data: engine.UpcomingHolidays(holidays, time.Now(), query.Limit),
	})
}

func GetHoliday(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HolidayResponse{Error: &s})
		return
	}

	var holiday models.Holiday
	err = models.DB.First(&holiday, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HolidayResponse{Error: &s})
		return
	}

	data := newHoliday(c, holiday)
	c.JSON(http.StatusOK, HolidayResponse{Data: &data})
}

func UpdateHoliday(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HolidayResponse{Error: &s})
		return
	}

	var holiday models.Holiday
	err = models.DB.First(&holiday, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HolidayResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, HolidayEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HolidayResponse{Error: &s})
		return
	}

	var data HolidayEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HolidayResponse{Error: &s})
		return
	}

	err = models.DB.Model(&holiday).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HolidayResponse{Error: &s})
		return
	}

	r := newHoliday(c, holiday)
	c.JSON(http.StatusOK, HolidayResponse{Data: &r})
}

func DeleteHoliday(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var holiday models.Holiday
	err = models.DB.First(&holiday, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&holiday).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
