package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is an account of the application. All other resources are owned by exactly one user.
type User struct {
	DefaultModel
	UserEditable
	PasswordHash string `json:"-"`
}

type UserEditable struct {
	Email     string `json:"email" gorm:"uniqueIndex" example:"jane@example.com"` // Email address, used to log in
	FirstName string `json:"firstName" example:"Jane"`
	LastName  string `json:"lastName" example:"Doe"`
}

// NormalizeEmail returns the canonical form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Normalize trims the name fields and normalizes the email address.
func (u *UserEditable) Normalize() {
	u.Email = NormalizeEmail(u.Email)
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
}

func (u *User) BeforeSave(_ *gorm.DB) (err error) {
	u.Normalize()
	return nil
}
