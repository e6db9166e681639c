package models

import (
	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the spending ceiling a user sets for one month.
//
// There is at most one budget per user and month, the pair is the primary key.
type Budget struct {
	UserID uuid.UUID       `json:"-" gorm:"primaryKey"`
	Month  string          `json:"monthYear" gorm:"primaryKey" example:"2025-01"` // Month in YYYY-MM format
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"500"`
	Timestamps
}

// Validate verifies that the budget can be stored.
func (b *Budget) Validate() error {
	if _, err := types.ParseMonth(b.Month); err != nil {
		return err
	}

	if b.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

func (b *Budget) BeforeSave(_ *gorm.DB) (err error) {
	return b.Validate()
}
