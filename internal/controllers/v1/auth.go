package v1

import (
	"errors"
	"net/http"

	"github.com/fintrack/backend/internal/auth"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the routes for signup and login with
// the RouterGroup that is passed.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/signup", OptionsSignup)
	r.POST("/signup", co.Signup)

	r.OPTIONS("/login", OptionsLogin)
	r.POST("/login", co.Login)
}

type Signup struct {
	models.UserEditable
	Password string `json:"password" example:"correct horse battery staple"`
}

type Credentials struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type Session struct {
	Token string      `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.e30.ZRrHA1JJJW8opsbCGfG_HACGpVUMN_a9IV7pAx_Zmeo"` // Bearer token for the Authorization header
	User  models.User `json:"user"`                                                                                                 // The authenticated user
}

type SessionResponse struct {
	Data  *Session `json:"data"`                                     // Data for the session
	Error *string  `json:"error" example:"invalid credentials"` // The error, if any occurred
}

type UserResponse struct {
	Data  *models.User `json:"data"`                                                            // Data for the user
	Error *string      `json:"error" example:"a user with this email address already exists"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/signup [options]
func OptionsSignup(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Sign up
// @Description	Creates a new user. All fields are required.
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		409		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			signup	body		Signup	true	"User"
// @Router			/v1/auth/signup [post]
func (co Controller) Signup(c *gin.Context) {
	var data Signup
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	data.Normalize()
	err = requireFields(
		field{"email", data.Email},
		field{"password", data.Password},
		field{"firstName", data.FirstName},
		field{"lastName", data.LastName},
	)
	if err == nil {
		err = validateEmail(data.Email)
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	hash, err := auth.HashPassword(data.Password, co.BcryptCost)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	user := models.User{
		UserEditable: data.UserEditable,
		PasswordHash: hash,
	}

	err = co.Store.CreateUser(c.Request.Context(), &user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, UserResponse{Data: &user})
}

// @Summary		Log in
// @Description	Verifies the credentials and returns a token for the Authorization header
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/v1/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var data Credentials
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	err = requireFields(field{"email", data.Email}, field{"password", data.Password})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	user, err := co.Store.GetUserByEmail(c.Request.Context(), models.NormalizeEmail(data.Email))
	if errors.Is(err, models.ErrResourceNotFound) {
		err = auth.ErrInvalidCredentials
	}
	if err == nil {
		err = auth.CheckPassword(user.PasswordHash, data.Password)
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	token, err := co.Tokens.Issue(user.ID)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Data: &Session{
		Token: token,
		User:  user,
	}})
}
