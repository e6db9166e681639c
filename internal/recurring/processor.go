// Package recurring books the expenses of recurring expenses when they are due.
package recurring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store is the part of database.Store the Processor needs.
type Store interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListRecurringExpenses(ctx context.Context, userID uuid.UUID) ([]models.RecurringExpense, error)
	GetBudget(ctx context.Context, userID uuid.UUID, month types.Month) (models.Budget, error)
	BookRecurringExpense(ctx context.Context, recurring *models.RecurringExpense, expense *models.Expense) error
}

// Processor books due recurring expenses.
type Processor struct {
	store Store
	now   func() time.Time
}

func NewProcessor(store Store) *Processor {
	return &Processor{
		store: store,
		now:   time.Now,
	}
}

// Run books all recurring expenses that are due in or before the current month.
//
// A recurring expense is booked once per month until its due date is in the
// future. When the month of the due date has no budget, the recurring expense
// is skipped and stays due. It is booked once a budget for the month is set.
//
// Errors for single recurring expenses do not stop the run, all of them are
// returned together.
func (p *Processor) Run(ctx context.Context) error {
	users, err := p.store.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("could not list users: %w", err)
	}

	current := types.MonthOf(p.now().UTC())

	var errs []error
	var booked int
	for _, user := range users {
		items, err := p.store.ListRecurringExpenses(ctx, user.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("could not list recurring expenses of user %s: %w", user.ID, err))
			continue
		}

		for i := range items {
			n, err := p.book(ctx, &items[i], current)
			booked += n
			if err != nil {
				errs = append(errs, fmt.Errorf("recurring expense %s: %w", items[i].ID, err))
			}
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}

	log.Info().Int("users", len(users)).Int("booked", booked).Msg("recurring expenses processed")
	return errors.Join(errs...)
}

// book books the recurring expense for every due month up to and including
// current. It returns the number of booked expenses.
func (p *Processor) book(ctx context.Context, recurring *models.RecurringExpense, current types.Month) (int, error) {
	var booked int

	for {
		due, err := recurring.Due()
		if err != nil {
			return booked, err
		}

		if due.Month().After(current) {
			return booked, nil
		}

		_, err = p.store.GetBudget(ctx, recurring.UserID, due.Month())
		if errors.Is(err, models.ErrResourceNotFound) {
			log.Info().
				Str("recurring-expense", recurring.ID.String()).
				Str("month", due.Month().String()).
				Msg("skipping recurring expense, no budget set for the month")
			return booked, nil
		}
		if err != nil {
			return booked, err
		}

		expense, err := recurring.Book()
		if err != nil {
			return booked, err
		}

		err = p.store.BookRecurringExpense(ctx, recurring, &expense)
		if err != nil {
			return booked, err
		}

		log.Debug().
			Str("recurring-expense", recurring.ID.String()).
			Str("expense", expense.ID.String()).
			Str("date", expense.Date).
			Msg("booked recurring expense")
		booked++
	}
}

// Start runs the Processor immediately and then every interval until
// the context is cancelled.
func (p *Processor) Start(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := p.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("processing recurring expenses failed")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
