package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Auth              string `json:"auth" example:"https://example.com/api/v1/auth"`                              // URL of the auth endpoints
	Profile           string `json:"profile" example:"https://example.com/api/v1/profile"`                        // URL of the profile of the authenticated user
	Expenses          string `json:"expenses" example:"https://example.com/api/v1/expenses"`                      // URL of Expense collection endpoint
	Budgets           string `json:"budgets" example:"https://example.com/api/v1/budgets"`                        // URL of Budget collection endpoint
	BudgetUsage       string `json:"budgetUsage" example:"https://example.com/api/v1/budget-usage"`               // URL of the budget usage history
	Reports           string `json:"reports" example:"https://example.com/api/v1/reports"`                        // URL of the reports endpoint
	RecurringExpenses string `json:"recurringExpenses" example:"https://example.com/api/v1/recurring-expenses"` // URL of Recurring Expense collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := baseURL(c)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Auth:              url + "/v1/auth",
			Profile:           url + "/v1/profile",
			Expenses:          url + "/v1/expenses",
			Budgets:           url + "/v1/budgets",
			BudgetUsage:       url + "/v1/budget-usage",
			Reports:           url + "/v1/reports",
			RecurringExpenses: url + "/v1/recurring-expenses",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
