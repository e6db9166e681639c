package v1

import (
	"fmt"

	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	MonthYear string          `json:"monthYear" example:"2025-01"` // Month in YYYY-MM format
	Amount    decimal.Decimal `json:"amount" example:"500"`        // Spending ceiling for the month, must not be negative
}

type BudgetAmount struct {
	Amount decimal.Decimal `json:"amount" example:"750"` // New spending ceiling for the month, must not be negative
}

type BudgetLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/budgets/2025-01"`         // The budget itself
	Usage  string `json:"usage" example:"https://example.com/api/v1/budgets/2025-01/usage"` // Usage of the budget
	Report string `json:"report" example:"https://example.com/api/v1/reports/2025-01"`      // Expense report for the month
}

type Budget struct {
	models.Budget
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := baseURL(c)

	return Budget{
		Budget: model,
		Links: BudgetLinks{
			Self:   fmt.Sprintf("%s/v1/budgets/%s", url, model.Month),
			Usage:  fmt.Sprintf("%s/v1/budgets/%s/usage", url, model.Month),
			Report: fmt.Sprintf("%s/v1/reports/%s", url, model.Month),
		},
	}
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                // Data for the budget
	Error *string `json:"error" example:"the amount must not be negative"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                                  // List of budgets, ordered by month
	Error *string  `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}
