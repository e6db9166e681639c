package analytics

import (
	"strings"

	"github.com/fintrack/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// NoMonth is reported as highest and lowest month when there are no expenses.
const NoMonth = "N/A"

type MonthTotal struct {
	MonthYear  string          `json:"monthYear" example:"2025-01"`
	TotalSpent decimal.Decimal `json:"totalSpent" example:"250"`
}

// Trends is the month over month development of spending.
type Trends struct {
	Months       []MonthTotal `json:"months"`                         // Totals per month with expenses, ascending
	HighestMonth string       `json:"highestMonth" example:"2025-03"` // "N/A" when there are no expenses
	LowestMonth  string       `json:"lowestMonth" example:"2025-01"`  // "N/A" when there are no expenses
}

// SpendingTrends returns the total spent per month and the months with
// the highest and lowest spending. For equal totals, the earlier month wins.
func SpendingTrends(expenses []models.Expense) (Trends, error) {
	spent, err := groupSum(expenses, expenseMonth)
	if err != nil {
		return Trends{}, err
	}

	trends := Trends{
		Months:       make([]MonthTotal, 0, len(spent)),
		HighestMonth: NoMonth,
		LowestMonth:  NoMonth,
	}

	for month, total := range spent {
		trends.Months = append(trends.Months, MonthTotal{MonthYear: month, TotalSpent: total})
	}

	slices.SortFunc(trends.Months, func(a, b MonthTotal) int {
		return strings.Compare(a.MonthYear, b.MonthYear)
	})

	var highest, lowest decimal.Decimal
	for i, m := range trends.Months {
		if i == 0 || m.TotalSpent.GreaterThan(highest) {
			highest = m.TotalSpent
			trends.HighestMonth = m.MonthYear
		}

		if i == 0 || m.TotalSpent.LessThan(lowest) {
			lowest = m.TotalSpent
			trends.LowestMonth = m.MonthYear
		}
	}

	return trends, nil
}
