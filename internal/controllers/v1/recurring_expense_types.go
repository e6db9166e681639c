package v1

import (
	"fmt"

	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type RecurringExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/recurring-expenses/0e9e5e54-3f1b-4bfa-8f38-b5d39a7b4a4c"` // The recurring expense itself
}

type RecurringExpense struct {
	models.DefaultModel
	models.RecurringExpenseEditable
	Links RecurringExpenseLinks `json:"links"`
}

func newRecurringExpense(c *gin.Context, model models.RecurringExpense) RecurringExpense {
	return RecurringExpense{
		DefaultModel:             model.DefaultModel,
		RecurringExpenseEditable: model.RecurringExpenseEditable,
		Links: RecurringExpenseLinks{
			Self: fmt.Sprintf("%s/v1/recurring-expenses/%s", baseURL(c), model.ID),
		},
	}
}

type RecurringExpenseResponse struct {
	Data  *RecurringExpense `json:"data"`                                                      // Data for the recurring expense
	Error *string           `json:"error" example:"the repeat interval must be \"monthly\""` // The error, if any occurred
}

type RecurringExpenseListResponse struct {
	Data  []RecurringExpense `json:"data"`                                                                  // List of recurring expenses, ordered by next due date
	Error *string            `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}
