package models

import (
	"strings"

	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RepeatInterval string

const RepeatMonthly RepeatInterval = "monthly"

// RecurringExpense is a template for an expense that is booked every interval.
type RecurringExpense struct {
	DefaultModel
	UserID uuid.UUID `json:"-" gorm:"index"`
	RecurringExpenseEditable
}

type RecurringExpenseEditable struct {
	Amount         decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"950"`
	Category       Category        `json:"category" example:"Housing"`
	Description    string          `json:"description" example:"Rent"`
	NextDueDate    string          `json:"nextDueDate" example:"2025-02-01"`           // The next date the expense is booked on, YYYY-MM-DD
	RepeatInterval RepeatInterval  `json:"repeatInterval" example:"monthly" default:"monthly"` // Only "monthly" is supported
}

// Validate normalizes the fields and verifies that the recurring expense can be stored.
func (r *RecurringExpenseEditable) Validate() error {
	r.Description = strings.TrimSpace(r.Description)

	if !r.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	c, err := ParseCategory(string(r.Category))
	if err != nil {
		return err
	}
	r.Category = c

	if _, err := types.ParseDate(r.NextDueDate); err != nil {
		return err
	}

	if r.RepeatInterval == "" {
		r.RepeatInterval = RepeatMonthly
	}

	if r.RepeatInterval != RepeatMonthly {
		return ErrRepeatIntervalInvalid
	}

	return nil
}

// Due returns the next due date.
func (r RecurringExpense) Due() (types.Date, error) {
	return types.ParseDate(r.NextDueDate)
}

// Book returns the expense for the current due date and advances
// the due date by one interval.
//
// The ID of the expense is derived from the recurring expense and the due
// date, booking the same due date twice yields the same ID.
func (r *RecurringExpense) Book() (Expense, error) {
	due, err := r.Due()
	if err != nil {
		return Expense{}, err
	}

	expense := Expense{
		DefaultModel: DefaultModel{
			ID: uuid.NewSHA1(r.ID, []byte(due.String())),
		},
		UserID: r.UserID,
		ExpenseEditable: ExpenseEditable{
			Amount:      r.Amount,
			Category:    r.Category,
			Description: r.Description,
			Date:        due.Month().FirstDay().String(),
		},
	}

	r.NextDueDate = due.AddMonths(1).String()
	return expense, nil
}

func (r *RecurringExpense) BeforeSave(_ *gorm.DB) (err error) {
	return r.Validate()
}
