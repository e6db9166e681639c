package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrEmailInUse            = errors.New("a user with this email address already exists")
	ErrAmountNotPositive     = errors.New("the amount must be positive")
	ErrAmountNegative        = errors.New("the amount must not be negative")
	ErrInvalidCategory       = fmt.Errorf("the category must be one of %s", strings.Join(categoryNames(), ", "))
	ErrRepeatIntervalInvalid = fmt.Errorf("the repeat interval must be %q", RepeatMonthly)
)

// NotFound returns ErrResourceNotFound for a specific resource.
func NotFound(resource string) error {
	return fmt.Errorf("%w %s matching your query", ErrResourceNotFound, resource)
}
