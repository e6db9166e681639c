package v1

import (
	"errors"
	"net/http"

	"github.com/fintrack/backend/internal/analytics"
	"github.com/fintrack/backend/internal/auth"
	"github.com/fintrack/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral), errors.Is(err, analytics.ErrInvalidRecord):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound), errors.Is(err, analytics.ErrNoBudget):
		return http.StatusNotFound
	case errors.Is(err, models.ErrEmailInUse):
		return http.StatusConflict
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

var errFieldRequired = errors.New("a required field is missing")

// Profile errors
var (
	errInvalidEmail  = errors.New("the email address is not valid")
	errWrongPassword = errors.New("the current password is incorrect")
)

// Expense errors
var errDateRange = errors.New("the start date must not be after the end date")
