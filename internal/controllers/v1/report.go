package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/analytics"
	"github.com/fintrack/backend/internal/database"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	// Static path, takes precedence over the month parameter
	{
		r.OPTIONS("/trends", OptionsReport)
		r.GET("/trends", co.GetTrends)
	}

	{
		r.OPTIONS("/:month", OptionsReport)
		r.GET("/:month", co.GetReport)
	}
}

type ReportResponse struct {
	Data  *analytics.MonthReport `json:"data"`                                                                    // Report for the month
	Error *string                `json:"error" example:"could not parse the month, use the YYYY-MM format"` // The error, if any occurred
}

type TrendsResponse struct {
	Data  *analytics.Trends `json:"data"`                                                                  // Spending per month
	Error *string           `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/{month} [options]
// @Router			/v1/reports/trends [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get expense report
// @Description	Returns the total, the spending per category and per day and the top spending category of a month
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	ReportResponse
// @Param			month	path		string	true	"Month in YYYY-MM format"
// @Router			/v1/reports/{month} [get]
// @Security		Bearer
func (co Controller) GetReport(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	expenses, err := co.Store.ListExpenses(c.Request.Context(), currentUser(c).ID, database.MonthFilter(uri.Month))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	report, err := analytics.Report(uri.Month, expenses)
	if err != nil {
		logServerError(c, err)
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ReportResponse{Data: &report})
}

// @Summary		Get spending trends
// @Description	Returns the total spent per month and the months with the highest and lowest spending
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	TrendsResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	TrendsResponse
// @Router			/v1/reports/trends [get]
// @Security		Bearer
func (co Controller) GetTrends(c *gin.Context) {
	expenses, err := co.Store.ListExpenses(c.Request.Context(), currentUser(c).ID, database.ExpenseFilter{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TrendsResponse{
			Error: &s,
		})
		return
	}

	trends, err := analytics.SpendingTrends(expenses)
	if err != nil {
		logServerError(c, err)
		s := err.Error()
		c.JSON(status(err), TrendsResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, TrendsResponse{Data: &trends})
}
