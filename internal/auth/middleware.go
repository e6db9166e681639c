package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrMissingToken = errors.New("authentication is required, send a bearer token in the Authorization header")

const contextUser = "fintrack-user"

// UserFinder loads the user a token was issued for.
type UserFinder interface {
	GetUser(ctx context.Context, id uuid.UUID) (models.User, error)
}

// Middleware verifies the bearer token and stores the user in the context.
// Requests without a valid token are aborted with 401.
func Middleware(issuer *Issuer, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			abort(c, ErrMissingToken)
			return
		}

		id, err := issuer.Verify(strings.TrimSpace(token))
		if err != nil {
			abort(c, err)
			return
		}

		user, err := users.GetUser(c.Request.Context(), id)
		if errors.Is(err, models.ErrResourceNotFound) {
			abort(c, ErrInvalidToken)
			return
		}

		if err != nil {
			log.Error().Err(err).Str("user", id.String()).Msg("could not load user for token")
			httputil.NewError(c, http.StatusInternalServerError, models.ErrGeneral)
			c.Abort()
			return
		}

		c.Set(contextUser, user)
		c.Next()
	}
}

func abort(c *gin.Context, err error) {
	c.Header("WWW-Authenticate", `Bearer realm="fintrack"`)
	httputil.NewError(c, http.StatusUnauthorized, err)
	c.Abort()
}

// CurrentUser returns the user set by Middleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(contextUser)
	if !ok {
		return models.User{}, false
	}

	user, ok := v.(models.User)
	return user, ok
}
