package analytics

import (
	"strings"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// NoCategory is reported as top spending category for months without expenses.
const NoCategory = "None"

type CategoryTotal struct {
	Category string          `json:"category" example:"Food"`
	Amount   decimal.Decimal `json:"amount" example:"180.5"`
}

type DailyTotal struct {
	Date   string          `json:"date" example:"2025-01-05"`
	Amount decimal.Decimal `json:"amount" example:"42"`
}

// MonthReport summarizes the expenses of one month.
type MonthReport struct {
	MonthYear           string          `json:"monthYear" example:"2025-01"`
	TotalSpent          decimal.Decimal `json:"totalSpent" example:"250"`
	CategoryBreakdown   []CategoryTotal `json:"categoryBreakdown"`   // Totals per category, highest first
	TopSpendingCategory CategoryTotal   `json:"topSpendingCategory"` // Category "None" when there are no expenses
	DailyTotals         []DailyTotal    `json:"dailyTotals"`         // Totals per day with expenses, ascending
}

// Report summarizes the expenses of a month. All expenses must be in the month.
func Report(month types.Month, expenses []models.Expense) (MonthReport, error) {
	byDay, err := groupSum(expenses, func(e models.Expense) (string, error) {
		d, err := types.ParseDate(e.Date)
		if err != nil {
			return "", &InvalidRecordError{Kind: "expense", ID: e.ID.String(), Err: err}
		}

		if !month.Contains(d) {
			return "", &InvalidRecordError{Kind: "expense", ID: e.ID.String(), Err: errOutsideMonth}
		}

		return d.String(), nil
	})
	if err != nil {
		return MonthReport{}, err
	}

	byCategory, err := groupSum(expenses, func(e models.Expense) (string, error) {
		return string(e.Category), nil
	})
	if err != nil {
		return MonthReport{}, err
	}

	report := MonthReport{
		MonthYear:           month.String(),
		TotalSpent:          decimal.Zero,
		CategoryBreakdown:   make([]CategoryTotal, 0, len(byCategory)),
		TopSpendingCategory: CategoryTotal{Category: NoCategory, Amount: decimal.Zero},
		DailyTotals:         make([]DailyTotal, 0, len(byDay)),
	}

	for category, amount := range byCategory {
		report.CategoryBreakdown = append(report.CategoryBreakdown, CategoryTotal{Category: category, Amount: amount})
		report.TotalSpent = report.TotalSpent.Add(amount)
	}

	// Highest amount first, ties by name
	slices.SortFunc(report.CategoryBreakdown, func(a, b CategoryTotal) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})

	if len(report.CategoryBreakdown) > 0 {
		report.TopSpendingCategory = report.CategoryBreakdown[0]
	}

	for day, amount := range byDay {
		report.DailyTotals = append(report.DailyTotals, DailyTotal{Date: day, Amount: amount})
	}

	slices.SortFunc(report.DailyTotals, func(a, b DailyTotal) int {
		return strings.Compare(a.Date, b.Date)
	})

	return report, nil
}
