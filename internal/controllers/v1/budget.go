package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fintrack/backend/internal/analytics"
	"github.com/fintrack/backend/internal/database"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.SetBudget)
	}

	// Budget for a month
	{
		r.OPTIONS("/:month", OptionsBudgetDetail)
		r.GET("/:month", co.GetBudget)
		r.PATCH("/:month", co.UpdateBudget)
		r.DELETE("/:month", co.DeleteBudget)
	}

	{
		r.OPTIONS("/:month/usage", OptionsBudgetUsage)
		r.GET("/:month/usage", co.GetBudgetUsage)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			month	path	string	true	"Month in YYYY-MM format"
// @Router			/v1/budgets/{month} [options]
func OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			month	path	string	true	"Month in YYYY-MM format"
// @Router			/v1/budgets/{month}/usage [options]
func OptionsBudgetUsage(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Set budget
// @Description	Sets the budget for a month. An existing budget for the month is overwritten.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
// @Security		Bearer
func (co Controller) SetBudget(c *gin.Context) {
	fields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err == nil {
		err = bodyContains(fields, "monthYear", "amount")
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var data BudgetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	budget := models.Budget{
		UserID: currentUser(c).ID,
		Month:  data.MonthYear,
		Amount: data.Amount,
	}

	err = co.Store.SetBudget(c.Request.Context(), &budget)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	co.respondBudget(c, budget)
}

// @Summary		List budgets
// @Description	Returns all budgets of the authenticated user, ordered by month
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
// @Security		Bearer
func (co Controller) GetBudgets(c *gin.Context) {
	budgets, err := co.Store.ListBudgets(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Get budget
// @Description	Returns the budget for a month. If no budget is set, the amount is 0.
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	BudgetResponse
// @Param			month	path		string	true	"Month in YYYY-MM format"
// @Router			/v1/budgets/{month} [get]
// @Security		Bearer
func (co Controller) GetBudget(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	budget, err := co.Store.GetBudget(c.Request.Context(), currentUser(c).ID, uri.Month)
	if errors.Is(err, models.ErrResourceNotFound) {
		budget, err = models.Budget{Month: uri.Month.String(), Amount: decimal.Zero}, nil
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	r := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &r})
}

// @Summary		Update budget
// @Description	Updates the amount of an existing budget
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			month	path		string			true	"Month in YYYY-MM format"
// @Param			budget	body		BudgetAmount	true	"Amount"
// @Router			/v1/budgets/{month} [patch]
// @Security		Bearer
func (co Controller) UpdateBudget(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	fields, err := httputil.GetBodyFields(c, BudgetAmount{})
	if err == nil {
		err = bodyContains(fields, "amount")
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var data BudgetAmount
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	budget := models.Budget{
		UserID: currentUser(c).ID,
		Month:  uri.Month.String(),
		Amount: data.Amount,
	}

	err = co.Store.UpdateBudget(c.Request.Context(), &budget)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	co.respondBudget(c, budget)
}

// @Summary		Delete budget
// @Description	Deletes the budget for a month
// @Tags			Budgets
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	path		string	true	"Month in YYYY-MM format"
// @Router			/v1/budgets/{month} [delete]
// @Security		Bearer
func (co Controller) DeleteBudget(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Store.DeleteBudget(c.Request.Context(), currentUser(c).ID, uri.Month)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get budget usage
// @Description	Returns the spending of a month compared to its budget.
// @Description	percentageUsed is null if money was spent with a budget of 0.
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	UsageResponse
// @Failure		400		{object}	UsageResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	UsageResponse
// @Failure		500		{object}	UsageResponse
// @Param			month	path		string	true	"Month in YYYY-MM format"
// @Router			/v1/budgets/{month}/usage [get]
// @Security		Bearer
func (co Controller) GetBudgetUsage(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UsageResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)

	var budget *models.Budget
	b, err := co.Store.GetBudget(c.Request.Context(), user.ID, uri.Month)
	if err == nil {
		budget = &b
	} else if !errors.Is(err, models.ErrResourceNotFound) {
		s := err.Error()
		c.JSON(status(err), UsageResponse{
			Error: &s,
		})
		return
	}

	expenses, err := co.Store.ListExpenses(c.Request.Context(), user.ID, database.MonthFilter(uri.Month))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UsageResponse{
			Error: &s,
		})
		return
	}

	usage, err := analytics.MonthUsage(uri.Month, budget, expenses)
	if err != nil {
		logServerError(c, err)
		s := err.Error()
		c.JSON(status(err), UsageResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, UsageResponse{Data: &usage})
}

// respondBudget reads the stored budget and writes it as response.
func (co Controller) respondBudget(c *gin.Context, budget models.Budget) {
	month, err := types.ParseMonth(budget.Month)
	if err == nil {
		budget, err = co.Store.GetBudget(c.Request.Context(), budget.UserID, month)
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	r := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &r})
}

// bodyContains returns an error for the first of the names
// that is not in the body fields.
func bodyContains(fields []string, names ...string) error {
	for _, name := range names {
		if !slices.Contains(fields, name) {
			return fmt.Errorf("%w: %s", errFieldRequired, name)
		}
	}

	return nil
}
