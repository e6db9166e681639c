package database

import (
	"context"
	"fmt"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gorm implements Store with gorm on a SQLite database.
type Gorm struct {
	db *gorm.DB
}

var _ Store = (*Gorm)(nil)

// Connect opens the SQLite database, migrates the schema and configures the connection pool.
func Connect(dsn string) (*Gorm, error) {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(models.User{}, models.Expense{}, models.Budget{}, models.RecurringExpense{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	return &Gorm{db: db}, nil
}

// Ping verifies that the database is reachable.
func (g *Gorm) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// Close closes the database connections.
func (g *Gorm) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// notFoundIfNone turns a write that did not touch any row into a not found error.
func notFoundIfNone(tx *gorm.DB, resource string) error {
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return models.NotFound(resource)
	}

	return nil
}

func (g *Gorm) CreateUser(ctx context.Context, user *models.User) error {
	return g.db.WithContext(ctx).Create(user).Error
}

func (g *Gorm) GetUser(ctx context.Context, id uuid.UUID) (user models.User, err error) {
	err = g.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return
}

func (g *Gorm) GetUserByEmail(ctx context.Context, email string) (user models.User, err error) {
	err = g.db.WithContext(ctx).First(&user, "email = ?", models.NormalizeEmail(email)).Error
	return
}

func (g *Gorm) ListUsers(ctx context.Context) (users []models.User, err error) {
	err = g.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error
	return
}

func (g *Gorm) UpdateUser(ctx context.Context, user *models.User) error {
	tx := g.db.WithContext(ctx).
		Model(user).
		Select("*").
		Omit("id", "created_at").
		Updates(user)

	return notFoundIfNone(tx, "user")
}

func (g *Gorm) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, owned := range []any{&models.Expense{}, &models.Budget{}, &models.RecurringExpense{}} {
			if err := tx.Where("user_id = ?", id).Delete(owned).Error; err != nil {
				return err
			}
		}

		return notFoundIfNone(tx.Where("id = ?", id).Delete(&models.User{}), "user")
	})
}

func (g *Gorm) CreateExpense(ctx context.Context, expense *models.Expense) error {
	return g.db.WithContext(ctx).Create(expense).Error
}

func (g *Gorm) GetExpense(ctx context.Context, userID, id uuid.UUID) (expense models.Expense, err error) {
	err = g.db.WithContext(ctx).First(&expense, "id = ? AND user_id = ?", id, userID).Error
	return
}

func (g *Gorm) ListExpenses(ctx context.Context, userID uuid.UUID, filter ExpenseFilter) (expenses []models.Expense, err error) {
	query := g.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if !filter.From.IsZero() {
		query = query.Where("date >= ?", filter.From.String())
	}

	if !filter.Until.IsZero() {
		query = query.Where("date <= ?", filter.Until.String())
	}

	err = query.Order("date DESC, created_at DESC").Find(&expenses).Error
	return
}

func (g *Gorm) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	tx := g.db.WithContext(ctx).
		Model(expense).
		Where("user_id = ?", expense.UserID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(expense)

	return notFoundIfNone(tx, "expense")
}

func (g *Gorm) DeleteExpense(ctx context.Context, userID, id uuid.UUID) error {
	return notFoundIfNone(g.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Expense{}), "expense")
}

func (g *Gorm) SetBudget(ctx context.Context, budget *models.Budget) error {
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(budget).Error
}

func (g *Gorm) GetBudget(ctx context.Context, userID uuid.UUID, month types.Month) (budget models.Budget, err error) {
	err = g.db.WithContext(ctx).First(&budget, "user_id = ? AND month = ?", userID, month.String()).Error
	return
}

func (g *Gorm) ListBudgets(ctx context.Context, userID uuid.UUID) (budgets []models.Budget, err error) {
	err = g.db.WithContext(ctx).Where("user_id = ?", userID).Order("month ASC").Find(&budgets).Error
	return
}

// UpdateBudget sets the amount of an existing budget.
//
// The budget is passed as model so that its save hooks validate it.
func (g *Gorm) UpdateBudget(ctx context.Context, budget *models.Budget) error {
	tx := g.db.WithContext(ctx).
		Model(budget).
		Where("user_id = ? AND month = ?", budget.UserID, budget.Month).
		Update("amount", budget.Amount)

	return notFoundIfNone(tx, "budget")
}

func (g *Gorm) DeleteBudget(ctx context.Context, userID uuid.UUID, month types.Month) error {
	return notFoundIfNone(g.db.WithContext(ctx).Where("user_id = ? AND month = ?", userID, month.String()).Delete(&models.Budget{}), "budget")
}

func (g *Gorm) CreateRecurringExpense(ctx context.Context, recurring *models.RecurringExpense) error {
	return g.db.WithContext(ctx).Create(recurring).Error
}

func (g *Gorm) GetRecurringExpense(ctx context.Context, userID, id uuid.UUID) (recurring models.RecurringExpense, err error) {
	err = g.db.WithContext(ctx).First(&recurring, "id = ? AND user_id = ?", id, userID).Error
	return
}

func (g *Gorm) ListRecurringExpenses(ctx context.Context, userID uuid.UUID) (recurring []models.RecurringExpense, err error) {
	err = g.db.WithContext(ctx).Where("user_id = ?", userID).Order("next_due_date ASC, created_at ASC").Find(&recurring).Error
	return
}

func (g *Gorm) UpdateRecurringExpense(ctx context.Context, recurring *models.RecurringExpense) error {
	return updateRecurringExpense(g.db.WithContext(ctx), recurring)
}

func updateRecurringExpense(db *gorm.DB, recurring *models.RecurringExpense) error {
	tx := db.
		Model(recurring).
		Where("user_id = ?", recurring.UserID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(recurring)

	return notFoundIfNone(tx, "recurring expense")
}

func (g *Gorm) DeleteRecurringExpense(ctx context.Context, userID, id uuid.UUID) error {
	return notFoundIfNone(g.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.RecurringExpense{}), "recurring expense")
}

func (g *Gorm) BookRecurringExpense(ctx context.Context, recurring *models.RecurringExpense, expense *models.Expense) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// An expense with the same ID was booked by an earlier run
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(expense).Error; err != nil {
			return err
		}

		return updateRecurringExpense(tx, recurring)
	})
}
