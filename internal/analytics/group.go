package analytics

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/shopspring/decimal"
)

// groupSum adds up the amounts of the expenses per key.
//
// Every expense is checked before its amount is added, the first invalid
// expense aborts the aggregation.
func groupSum[K comparable](expenses []models.Expense, key func(models.Expense) (K, error)) (map[K]decimal.Decimal, error) {
	totals := make(map[K]decimal.Decimal)

	for _, e := range expenses {
		if e.Amount.IsNegative() {
			return nil, &InvalidRecordError{Kind: "expense", ID: e.ID.String(), Err: models.ErrAmountNegative}
		}

		k, err := key(e)
		if err != nil {
			return nil, err
		}

		totals[k] = valueOrZero(totals, k).Add(e.Amount)
	}

	return totals, nil
}

// sum adds up the amounts of all expenses.
func sum(expenses []models.Expense) (decimal.Decimal, error) {
	totals, err := groupSum(expenses, func(models.Expense) (struct{}, error) {
		return struct{}{}, nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return valueOrZero(totals, struct{}{}), nil
}
