// Package analytics aggregates budgets and expenses into usage figures,
// monthly reports and spending trends.
//
// All functions are pure: they work on the records passed in and never
// modify them.
package analytics

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var hundred = decimal.NewFromInt(100)

// MonthlyUsage is the spending of one month compared to its budget.
type MonthlyUsage struct {
	MonthYear    string          `json:"monthYear" example:"2025-01"`
	BudgetAmount decimal.Decimal `json:"budgetAmount" example:"500"` // 0 if no budget is set
	TotalSpent   decimal.Decimal `json:"totalSpent" example:"250"`

	// Percentage of the budget spent, rounded to two decimal places.
	// null when money was spent without a budget.
	PercentageUsed Percent `json:"percentageUsed" swaggertype:"primitive,string" example:"50.00"`
}

// Percent is a percentage that is always written with two decimal places.
// An invalid Percent is written as null.
type Percent struct {
	decimal.NullDecimal
}

func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}

	return []byte(`"` + p.Decimal.StringFixed(2) + `"`), nil
}

// String returns the percentage with two decimal places or "null".
func (p Percent) String() string {
	if !p.Valid {
		return "null"
	}

	return p.Decimal.StringFixed(2)
}

// Percentage returns spent as percentage of budget, rounded to two places.
//
// Without a budget, spending nothing is 0 percent. Spending anything is
// unbounded and reported as invalid Percent.
func Percentage(spent, budget decimal.Decimal) Percent {
	if budget.IsZero() {
		if spent.IsZero() {
			return Percent{decimal.NewNullDecimal(decimal.Zero)}
		}
		return Percent{}
	}

	return Percent{decimal.NewNullDecimal(spent.Mul(hundred).Div(budget).Round(2))}
}

func newUsage(month string, budget, spent decimal.Decimal) MonthlyUsage {
	return MonthlyUsage{
		MonthYear:      month,
		BudgetAmount:   budget,
		TotalSpent:     spent,
		PercentageUsed: Percentage(spent, budget),
	}
}

// BudgetUsage returns the usage for every month that has a budget or at
// least one expense, sorted by month ascending.
//
// Months without budget have a budget amount of 0.
func BudgetUsage(budgets []models.Budget, expenses []models.Expense) ([]MonthlyUsage, error) {
	budgeted, err := budgetsByMonth(budgets)
	if err != nil {
		return nil, err
	}

	spent, err := groupSum(expenses, expenseMonth)
	if err != nil {
		return nil, err
	}

	months := maps.Keys(budgeted)
	for month := range spent {
		if _, ok := budgeted[month]; !ok {
			months = append(months, month)
		}
	}
	// String order is chronological for YYYY-MM
	slices.Sort(months)

	usage := make([]MonthlyUsage, 0, len(months))
	for _, month := range months {
		usage = append(usage, newUsage(month, valueOrZero(budgeted, month), valueOrZero(spent, month)))
	}

	return usage, nil
}

// MonthUsage returns the usage for a single month.
//
// budget is nil when no budget is set for the month. In that case, the usage
// is computed with a budget of 0 and returned together with ErrNoBudget.
// All expenses must be in the month.
func MonthUsage(month types.Month, budget *models.Budget, expenses []models.Expense) (MonthlyUsage, error) {
	for _, e := range expenses {
		m, err := expenseMonth(e)
		if err != nil {
			return MonthlyUsage{}, err
		}

		if m != month.String() {
			return MonthlyUsage{}, &InvalidRecordError{Kind: "expense", ID: e.ID.String(), Err: errOutsideMonth}
		}
	}

	spent, err := sum(expenses)
	if err != nil {
		return MonthlyUsage{}, err
	}

	if budget == nil {
		return newUsage(month.String(), decimal.Zero, spent), ErrNoBudget
	}

	if err := checkBudget(*budget); err != nil {
		return MonthlyUsage{}, err
	}

	if budget.Month != month.String() {
		return MonthlyUsage{}, &InvalidRecordError{Kind: "budget", ID: budget.Month, Err: errOutsideMonth}
	}

	return newUsage(month.String(), budget.Amount, spent), nil
}

func checkBudget(b models.Budget) error {
	if _, err := types.ParseMonth(b.Month); err != nil {
		return &InvalidRecordError{Kind: "budget", ID: b.Month, Err: err}
	}

	if b.Amount.IsNegative() {
		return &InvalidRecordError{Kind: "budget", ID: b.Month, Err: models.ErrAmountNegative}
	}

	return nil
}

func budgetsByMonth(budgets []models.Budget) (map[string]decimal.Decimal, error) {
	budgeted := make(map[string]decimal.Decimal, len(budgets))

	for _, b := range budgets {
		if err := checkBudget(b); err != nil {
			return nil, err
		}

		if _, ok := budgeted[b.Month]; ok {
			return nil, &InvalidRecordError{Kind: "budget", ID: b.Month, Err: errDuplicateMonth}
		}

		budgeted[b.Month] = b.Amount
	}

	return budgeted, nil
}

// expenseMonth returns the month key of a valid expense.
func expenseMonth(e models.Expense) (string, error) {
	m, err := e.Month()
	if err != nil {
		return "", &InvalidRecordError{Kind: "expense", ID: e.ID.String(), Err: err}
	}

	return m.String(), nil
}

func valueOrZero[K comparable](m map[K]decimal.Decimal, key K) decimal.Decimal {
	if v, ok := m[key]; ok {
		return v
	}
	return decimal.Zero
}
