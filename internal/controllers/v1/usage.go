package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/analytics"
	"github.com/fintrack/backend/internal/database"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterBudgetUsageRoutes registers the routes for the budget usage
// history with the RouterGroup that is passed.
func (co Controller) RegisterBudgetUsageRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudgetUsageHistory)
	r.GET("", co.GetBudgetUsageHistory)
}

type UsageResponse struct {
	Data  *analytics.MonthlyUsage `json:"data"`                                       // Usage for the month
	Error *string                 `json:"error" example:"no budget set for this month"` // The error, if any occurred
}

type UsageListResponse struct {
	Data  []analytics.MonthlyUsage `json:"data"`                                                                  // Usage per month, ordered by month
	Error *string                  `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// logServerError logs errors that are returned with a 5xx status.
func logServerError(c *gin.Context, err error) {
	if status(err) >= http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("aggregation failed")
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budget-usage [options]
func OptionsBudgetUsageHistory(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get budget usage history
// @Description	Returns the usage for every month with a budget or an expense, ordered by month.
// @Description	Months without budget have a budgetAmount of 0. percentageUsed is null if money was spent with a budget of 0.
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	UsageListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	UsageListResponse
// @Router			/v1/budget-usage [get]
// @Security		Bearer
func (co Controller) GetBudgetUsageHistory(c *gin.Context) {
	user := currentUser(c)

	budgets, err := co.Store.ListBudgets(c.Request.Context(), user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UsageListResponse{
			Error: &s,
		})
		return
	}

	expenses, err := co.Store.ListExpenses(c.Request.Context(), user.ID, database.ExpenseFilter{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UsageListResponse{
			Error: &s,
		})
		return
	}

	usage, err := analytics.BudgetUsage(budgets, expenses)
	if err != nil {
		logServerError(c, err)
		s := err.Error()
		c.JSON(status(err), UsageListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, UsageListResponse{Data: usage})
}
