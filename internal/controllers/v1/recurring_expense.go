package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterRecurringExpenseRoutes registers the routes for recurring expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterRecurringExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRecurringExpenseList)
		r.GET("", co.GetRecurringExpenses)
		r.POST("", co.CreateRecurringExpense)
	}

	// Recurring expense with ID
	{
		r.OPTIONS("/:id", co.OptionsRecurringExpenseDetail)
		r.GET("/:id", co.GetRecurringExpense)
		r.PATCH("/:id", co.UpdateRecurringExpense)
		r.DELETE("/:id", co.DeleteRecurringExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Expenses
// @Success		204
// @Router			/v1/recurring-expenses [options]
func OptionsRecurringExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-expenses/{id} [options]
// @Security		Bearer
func (co Controller) OptionsRecurringExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.Store.GetRecurringExpense(c.Request.Context(), currentUser(c).ID, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create recurring expense
// @Description	Creates a new recurring expense. It is booked as expense on the first day of the month of every due date.
// @Tags			Recurring Expenses
// @Accept			json
// @Produce		json
// @Success		201					{object}	RecurringExpenseResponse
// @Failure		400					{object}	RecurringExpenseResponse
// @Failure		401					{object}	httpError
// @Failure		500					{object}	RecurringExpenseResponse
// @Param			recurringExpense	body		models.RecurringExpenseEditable	true	"Recurring expense"
// @Router			/v1/recurring-expenses [post]
// @Security		Bearer
func (co Controller) CreateRecurringExpense(c *gin.Context) {
	var data models.RecurringExpenseEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	recurring := models.RecurringExpense{
		UserID:                   currentUser(c).ID,
		RecurringExpenseEditable: data,
	}

	err = co.Store.CreateRecurringExpense(c.Request.Context(), &recurring)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	r := newRecurringExpense(c, recurring)
	c.JSON(http.StatusCreated, RecurringExpenseResponse{Data: &r})
}

// @Summary		List recurring expenses
// @Description	Returns the recurring expenses of the authenticated user
// @Tags			Recurring Expenses
// @Produce		json
// @Success		200	{object}	RecurringExpenseListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	RecurringExpenseListResponse
// @Router			/v1/recurring-expenses [get]
// @Security		Bearer
func (co Controller) GetRecurringExpenses(c *gin.Context) {
	recurring, err := co.Store.ListRecurringExpenses(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseListResponse{
			Error: &s,
		})
		return
	}

	data := make([]RecurringExpense, 0, len(recurring))
	for _, r := range recurring {
		data = append(data, newRecurringExpense(c, r))
	}

	c.JSON(http.StatusOK, RecurringExpenseListResponse{Data: data})
}

// @Summary		Get recurring expense
// @Description	Returns a specific recurring expense
// @Tags			Recurring Expenses
// @Produce		json
// @Success		200	{object}	RecurringExpenseResponse
// @Failure		400	{object}	RecurringExpenseResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	RecurringExpenseResponse
// @Failure		500	{object}	RecurringExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-expenses/{id} [get]
// @Security		Bearer
func (co Controller) GetRecurringExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	recurring, err := co.Store.GetRecurringExpense(c.Request.Context(), currentUser(c).ID, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	r := newRecurringExpense(c, recurring)
	c.JSON(http.StatusOK, RecurringExpenseResponse{Data: &r})
}

// @Summary		Update recurring expense
// @Description	Update an existing recurring expense. Only values to be updated need to be specified.
// @Tags			Recurring Expenses
// @Accept			json
// @Produce		json
// @Success		200					{object}	RecurringExpenseResponse
// @Failure		400					{object}	RecurringExpenseResponse
// @Failure		401					{object}	httpError
// @Failure		404					{object}	RecurringExpenseResponse
// @Failure		500					{object}	RecurringExpenseResponse
// @Param			id					path		URIID								true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			recurringExpense	body		models.RecurringExpenseEditable	true	"Recurring expense"
// @Router			/v1/recurring-expenses/{id} [patch]
// @Security		Bearer
func (co Controller) UpdateRecurringExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	recurring, err := co.Store.GetRecurringExpense(c.Request.Context(), currentUser(c).ID, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, models.RecurringExpenseEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	var data models.RecurringExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	if slices.Contains(updateFields, "amount") {
		recurring.Amount = data.Amount
	}
	if slices.Contains(updateFields, "category") {
		recurring.Category = data.Category
	}
	if slices.Contains(updateFields, "description") {
		recurring.Description = data.Description
	}
	if slices.Contains(updateFields, "nextDueDate") {
		recurring.NextDueDate = data.NextDueDate
	}
	if slices.Contains(updateFields, "repeatInterval") {
		recurring.RepeatInterval = data.RepeatInterval
	}

	err = co.Store.UpdateRecurringExpense(c.Request.Context(), &recurring)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &s,
		})
		return
	}

	r := newRecurringExpense(c, recurring)
	c.JSON(http.StatusOK, RecurringExpenseResponse{Data: &r})
}

// @Summary		Delete recurring expense
// @Description	Deletes a recurring expense. Expenses that were already booked are kept.
// @Tags			Recurring Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-expenses/{id} [delete]
// @Security		Bearer
func (co Controller) DeleteRecurringExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Store.DeleteRecurringExpense(c.Request.Context(), currentUser(c).ID, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
