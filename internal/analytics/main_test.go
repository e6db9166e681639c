package analytics_test

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func budget(month string, amount string) models.Budget {
	return models.Budget{Month: month, Amount: decimal.RequireFromString(amount)}
}

func expense(date string, amount string) models.Expense {
	return categorized(date, amount, models.CategoryOther)
}

func categorized(date string, amount string, category models.Category) models.Expense {
	return models.Expense{
		DefaultModel: models.DefaultModel{ID: uuid.New()},
		ExpenseEditable: models.ExpenseEditable{
			Date:     date,
			Amount:   decimal.RequireFromString(amount),
			Category: category,
		},
	}
}
