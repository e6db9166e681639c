package v1

import (
	"fmt"
	"strings"

	"github.com/fintrack/backend/internal/database"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/c4b8f4a1-9e41-4b8a-a4a7-3c0c1f8d2e5b"` // The expense itself
}

type Expense struct {
	models.DefaultModel
	models.ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	return Expense{
		DefaultModel:    model.DefaultModel,
		ExpenseEditable: model.ExpenseEditable,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", baseURL(c), model.ID),
		},
	}
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                // Data for the expense
	Error *string  `json:"error" example:"the amount must be positive"` // The error, if any occurred
}

type ExpenseListResponse struct {
	Data  []Expense `json:"data"`                                                                                   // List of expenses
	Error *string   `json:"error" example:"could not parse the date, use the YYYY-MM-DD format: \"2025-13-01\""` // The error, if any occurred
}

// ExpenseQueryFilter contains the filters for the expense list.
type ExpenseQueryFilter struct {
	Category string     `form:"category"`                       // Exact category, case-insensitive
	Start    types.Date `form:"start" swaggertype:"string"`     // Earliest date, inclusive
	End      types.Date `form:"end" swaggertype:"string"`       // Latest date, inclusive
	Match    string     `form:"match"`                          // Glob pattern for the description, e.g. "*coffee*"
}

// model converts the query filter to a store filter.
func (f ExpenseQueryFilter) model() (database.ExpenseFilter, error) {
	filter := database.ExpenseFilter{
		From:  f.Start,
		Until: f.End,
	}

	if !f.Start.IsZero() && !f.End.IsZero() && f.Start.After(f.End) {
		return database.ExpenseFilter{}, errDateRange
	}

	if f.Category != "" {
		category, err := models.ParseCategory(f.Category)
		if err != nil {
			return database.ExpenseFilter{}, err
		}
		filter.Category = category
	}

	return filter, nil
}

// matches reports whether the description of the expense matches the
// glob pattern. Matching ignores case.
func (f ExpenseQueryFilter) matches(e models.Expense) bool {
	if f.Match == "" {
		return true
	}

	return glob.Glob(strings.ToLower(f.Match), strings.ToLower(e.Description))
}
