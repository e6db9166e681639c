package v1

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/types"
	"github.com/fintrack/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

type URIID struct {
	ID uuid.UUID `uri:"id" format:"UUID"` // ID of the resource
}

type URIMonth struct {
	Month types.Month `uri:"month" swaggertype:"string" example:"2025-01"` // Year and month in YYYY-MM format
}

// field is a named request value that must not be empty.
type field struct {
	name  string
	value string
}

// requireFields returns an error for the first field that is empty.
func requireFields(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", errFieldRequired, f.name)
		}
	}

	return nil
}

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: %q", errInvalidEmail, email)
	}

	return nil
}

// baseURL returns the external URL of the API.
func baseURL(c *gin.Context) string {
	return c.GetString(string(httputil.ContextURL))
}
