// Package database defines the storage interface of fintrack and
// implements it on top of gorm with SQLite.
package database

import (
	"context"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
)

// Store is the persistence layer used by the controllers.
//
// All methods that take a user ID scope the operation to the resources
// owned by that user. Resources of other users are reported as not found.
type Store interface {
	Ping(ctx context.Context) error
	Close() error

	UserStore
	ExpenseStore
	BudgetStore
	RecurringExpenseStore
}

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error

	// DeleteUser deletes the user and all resources owned by them.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type ExpenseStore interface {
	CreateExpense(ctx context.Context, expense *models.Expense) error
	GetExpense(ctx context.Context, userID, id uuid.UUID) (models.Expense, error)

	// ListExpenses returns the expenses matching the filter, newest first.
	ListExpenses(ctx context.Context, userID uuid.UUID, filter ExpenseFilter) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, expense *models.Expense) error
	DeleteExpense(ctx context.Context, userID, id uuid.UUID) error
}

type BudgetStore interface {
	// SetBudget creates the budget for the month or overwrites its amount.
	SetBudget(ctx context.Context, budget *models.Budget) error
	GetBudget(ctx context.Context, userID uuid.UUID, month types.Month) (models.Budget, error)

	// ListBudgets returns all budgets of the user, ordered by month ascending.
	ListBudgets(ctx context.Context, userID uuid.UUID) ([]models.Budget, error)

	// UpdateBudget updates the amount of an existing budget.
	UpdateBudget(ctx context.Context, budget *models.Budget) error
	DeleteBudget(ctx context.Context, userID uuid.UUID, month types.Month) error
}

type RecurringExpenseStore interface {
	CreateRecurringExpense(ctx context.Context, recurring *models.RecurringExpense) error
	GetRecurringExpense(ctx context.Context, userID, id uuid.UUID) (models.RecurringExpense, error)
	ListRecurringExpenses(ctx context.Context, userID uuid.UUID) ([]models.RecurringExpense, error)
	UpdateRecurringExpense(ctx context.Context, recurring *models.RecurringExpense) error
	DeleteRecurringExpense(ctx context.Context, userID, id uuid.UUID) error

	// BookRecurringExpense stores the expense and the advanced due date of the
	// recurring expense in one step.
	BookRecurringExpense(ctx context.Context, recurring *models.RecurringExpense, expense *models.Expense) error
}

// ExpenseFilter restricts the expenses returned by ListExpenses.
// Zero values do not filter.
type ExpenseFilter struct {
	Category models.Category
	From     types.Date // Inclusive lower bound for the date
	Until    types.Date // Inclusive upper bound for the date
}

// MonthFilter returns a filter for all expenses in a month.
func MonthFilter(month types.Month) ExpenseFilter {
	return ExpenseFilter{
		From:  month.FirstDay(),
		Until: month.LastDay(),
	}
}
