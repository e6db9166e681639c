package models

import (
	"strings"

	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single spending of a user.
type Expense struct {
	DefaultModel
	UserID uuid.UUID `json:"-" gorm:"index"`
	ExpenseEditable
}

type ExpenseEditable struct {
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"12.5"` // The amount spent, must be positive
	Category    Category        `json:"category" example:"Food"`
	Description string          `json:"description" example:"Lunch with colleagues"`
	Date        string          `json:"date" gorm:"index" example:"2025-01-05"` // Date of the expense in YYYY-MM-DD format
}

// Validate normalizes the fields and verifies that the expense can be stored.
func (e *ExpenseEditable) Validate() error {
	e.Description = strings.TrimSpace(e.Description)

	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	c, err := ParseCategory(string(e.Category))
	if err != nil {
		return err
	}
	e.Category = c

	_, err = types.ParseDate(e.Date)
	return err
}

// Month returns the month key of the expense.
func (e Expense) Month() (types.Month, error) {
	d, err := types.ParseDate(e.Date)
	if err != nil {
		return types.Month{}, err
	}

	return d.Month(), nil
}

func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	return e.Validate()
}
