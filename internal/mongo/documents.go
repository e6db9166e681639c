package mongo

import (
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userDocument struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	FirstName    string    `bson:"first_name"`
	LastName     string    `bson:"last_name"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type expenseDocument struct {
	ID          string               `bson:"_id"`
	UserID      string               `bson:"user_id"`
	Amount      primitive.Decimal128 `bson:"amount"`
	Category    string               `bson:"category"`
	Description string               `bson:"description"`
	Date        string               `bson:"date"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

// budgetDocument is keyed by "<user id>:<month>" so that the document ID
// enforces one budget per user and month.
type budgetDocument struct {
	ID        string               `bson:"_id"`
	UserID    string               `bson:"user_id"`
	Month     string               `bson:"month"`
	Amount    primitive.Decimal128 `bson:"amount"`
	CreatedAt time.Time            `bson:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

type recurringExpenseDocument struct {
	ID             string               `bson:"_id"`
	UserID         string               `bson:"user_id"`
	Amount         primitive.Decimal128 `bson:"amount"`
	Category       string               `bson:"category"`
	Description    string               `bson:"description"`
	NextDueDate    string               `bson:"next_due_date"`
	RepeatInterval string               `bson:"repeat_interval"`
	CreatedAt      time.Time            `bson:"created_at"`
	UpdatedAt      time.Time            `bson:"updated_at"`
}

func budgetKey(userID uuid.UUID, month string) string {
	return userID.String() + ":" + month
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, errors.Wrapf(err, "amount %s cannot be stored", d)
	}
	return v, nil
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "stored amount %s is not a decimal", v)
	}
	return d, nil
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "stored ID %q is not a UUID", s)
	}
	return id, nil
}

func newUserDocument(u models.User) userDocument {
	return userDocument{
		ID:           u.ID.String(),
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d userDocument) model() (models.User, error) {
	id, err := parseID(d.ID)
	if err != nil {
		return models.User{}, err
	}

	return models.User{
		DefaultModel: models.DefaultModel{
			ID:         id,
			Timestamps: models.Timestamps{CreatedAt: d.CreatedAt.UTC(), UpdatedAt: d.UpdatedAt.UTC()},
		},
		UserEditable: models.UserEditable{
			Email:     d.Email,
			FirstName: d.FirstName,
			LastName:  d.LastName,
		},
		PasswordHash: d.PasswordHash,
	}, nil
}

func newExpenseDocument(e models.Expense) (expenseDocument, error) {
	amount, err := toDecimal128(e.Amount)
	if err != nil {
		return expenseDocument{}, err
	}

	return expenseDocument{
		ID:          e.ID.String(),
		UserID:      e.UserID.String(),
		Amount:      amount,
		Category:    string(e.Category),
		Description: e.Description,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}, nil
}

func (d expenseDocument) model() (models.Expense, error) {
	id, err := parseID(d.ID)
	if err != nil {
		return models.Expense{}, err
	}

	userID, err := parseID(d.UserID)
	if err != nil {
		return models.Expense{}, err
	}

	amount, err := fromDecimal128(d.Amount)
	if err != nil {
		return models.Expense{}, err
	}

	return models.Expense{
		DefaultModel: models.DefaultModel{
			ID:         id,
			Timestamps: models.Timestamps{CreatedAt: d.CreatedAt.UTC(), UpdatedAt: d.UpdatedAt.UTC()},
		},
		UserID: userID,
		ExpenseEditable: models.ExpenseEditable{
			Amount:      amount,
			Category:    models.Category(d.Category),
			Description: d.Description,
			Date:        d.Date,
		},
	}, nil
}

func (d budgetDocument) model() (models.Budget, error) {
	userID, err := parseID(d.UserID)
	if err != nil {
		return models.Budget{}, err
	}

	amount, err := fromDecimal128(d.Amount)
	if err != nil {
		return models.Budget{}, err
	}

	return models.Budget{
		UserID:     userID,
		Month:      d.Month,
		Amount:     amount,
		Timestamps: models.Timestamps{CreatedAt: d.CreatedAt.UTC(), UpdatedAt: d.UpdatedAt.UTC()},
	}, nil
}

func newRecurringExpenseDocument(r models.RecurringExpense) (recurringExpenseDocument, error) {
	amount, err := toDecimal128(r.Amount)
	if err != nil {
		return recurringExpenseDocument{}, err
	}

	return recurringExpenseDocument{
		ID:             r.ID.String(),
		UserID:         r.UserID.String(),
		Amount:         amount,
		Category:       string(r.Category),
		Description:    r.Description,
		NextDueDate:    r.NextDueDate,
		RepeatInterval: string(r.RepeatInterval),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}, nil
}

func (d recurringExpenseDocument) model() (models.RecurringExpense, error) {
	id, err := parseID(d.ID)
	if err != nil {
		return models.RecurringExpense{}, err
	}

	userID, err := parseID(d.UserID)
	if err != nil {
		return models.RecurringExpense{}, err
	}

	amount, err := fromDecimal128(d.Amount)
	if err != nil {
		return models.RecurringExpense{}, err
	}

	return models.RecurringExpense{
		DefaultModel: models.DefaultModel{
			ID:         id,
			Timestamps: models.Timestamps{CreatedAt: d.CreatedAt.UTC(), UpdatedAt: d.UpdatedAt.UTC()},
		},
		UserID: userID,
		RecurringExpenseEditable: models.RecurringExpenseEditable{
			Amount:         amount,
			Category:       models.Category(d.Category),
			Description:    d.Description,
			NextDueDate:    d.NextDueDate,
			RepeatInterval: models.RepeatInterval(d.RepeatInterval),
		},
	}, nil
}
