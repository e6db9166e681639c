// Package v1 implements the handlers of the v1 API.
package v1

import (
	"github.com/fintrack/backend/internal/auth"
	"github.com/fintrack/backend/internal/database"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Controller holds the dependencies of the v1 handlers.
type Controller struct {
	Store      database.Store
	Tokens     *auth.Issuer
	BcryptCost int
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
//
// The auth routes are public, all other routes require a valid token.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	co.RegisterAuthRoutes(r.Group("/auth"))

	authenticated := r.Group("", auth.Middleware(co.Tokens, co.Store))
	co.RegisterProfileRoutes(authenticated.Group("/profile"))
	co.RegisterExpenseRoutes(authenticated.Group("/expenses"))
	co.RegisterBudgetRoutes(authenticated.Group("/budgets"))
	co.RegisterBudgetUsageRoutes(authenticated.Group("/budget-usage"))
	co.RegisterReportRoutes(authenticated.Group("/reports"))
	co.RegisterRecurringExpenseRoutes(authenticated.Group("/recurring-expenses"))
}

// currentUser returns the authenticated user of the request.
func currentUser(c *gin.Context) models.User {
	user, _ := auth.CurrentUser(c)
	return user
}
