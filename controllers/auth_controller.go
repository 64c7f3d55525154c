package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/yurayurastudio/studio_backend/models"
	"github.com/yurayurastudio/studio_backend/services"
)

// AuthController handles login and the current session
type AuthController struct {
	users services.UserService
	log   logrus.FieldLogger
}

func NewAuthController(users services.UserService, log logrus.FieldLogger) *AuthController {
	return &AuthController{users: users, log: log}
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	resp, err := ac.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ac.log.WithField("remoteIp", c.RealIP()).Warn("Failed login attempt")
		}
		return respondError(c, ac.log, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Login successful",
		Data:    resp,
	})
}

// Me handles GET /api/auth/me
func (ac *AuthController) Me(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, ac.log, err)
	}

	user, err := ac.users.Me(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, ac.log, err)
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "User retrieved successfully",
		Data:    user,
	})
}
