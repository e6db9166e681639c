package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/auth"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterProfileRoutes registers the routes for the profile of the
// authenticated user with the RouterGroup that is passed.
func (co Controller) RegisterProfileRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsProfile)
		r.GET("", GetProfile)
		r.PATCH("", co.UpdateProfile)
		r.DELETE("", co.DeleteProfile)
	}

	{
		r.OPTIONS("/password", OptionsPassword)
		r.PUT("/password", co.UpdatePassword)
	}
}

type PasswordChange struct {
	OldPassword string `json:"oldPassword" example:"correct horse battery staple"`
	NewPassword string `json:"newPassword" example:"correct horse battery stable"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/profile [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/profile/password [options]
func OptionsPassword(c *gin.Context) {
	httputil.Options(http.MethodPut)(c)
}

// @Summary		Get profile
// @Description	Returns the authenticated user
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httpError
// @Router			/v1/profile [get]
// @Security		Bearer
func GetProfile(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, UserResponse{Data: &user})
}

// @Summary		Update profile
// @Description	Updates the name and email address of the authenticated user. All fields are required.
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		401		{object}	httpError
// @Failure		409		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			profile	body		models.UserEditable	true	"Profile"
// @Router			/v1/profile [patch]
// @Security		Bearer
func (co Controller) UpdateProfile(c *gin.Context) {
	var data models.UserEditable
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
		field{"firstName", data.FirstName},
		field{"lastName", data.LastName},
		field{"email", data.Email},
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

	user := currentUser(c)
	user.UserEditable = data

	err = co.Store.UpdateUser(c.Request.Context(), &user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: &user})
}

// @Summary		Change password
// @Description	Changes the password of the authenticated user. The current password must be sent along.
// @Tags			Profile
// @Accept			json
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			password	body		PasswordChange	true	"Passwords"
// @Router			/v1/profile/password [put]
// @Security		Bearer
func (co Controller) UpdatePassword(c *gin.Context) {
	var data PasswordChange
	err := httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = requireFields(field{"oldPassword", data.OldPassword}, field{"newPassword", data.NewPassword})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	user := currentUser(c)
	if auth.CheckPassword(user.PasswordHash, data.OldPassword) != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errWrongPassword.Error(),
		})
		return
	}

	user.PasswordHash, err = auth.HashPassword(data.NewPassword, co.BcryptCost)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Store.UpdateUser(c.Request.Context(), &user)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	log.Info().Str("user", user.ID.String()).Msg("password changed")
	c.Status(http.StatusNoContent)
}

// @Summary		Delete profile
// @Description	Deletes the authenticated user together with all their expenses, budgets and recurring expenses
// @Tags			Profile
// @Success		204
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/profile [delete]
// @Security		Bearer
func (co Controller) DeleteProfile(c *gin.Context) {
	user := currentUser(c)

	err := co.Store.DeleteUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
