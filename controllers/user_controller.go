package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/yurayurastudio/studio_backend/models"
	"github.com/yurayurastudio/studio_backend/services"
)

type UserController struct {
	users services.UserService
	log   logrus.FieldLogger
}

func NewUserController(users services.UserService, log logrus.FieldLogger) *UserController {
	return &UserController{users: users, log: log}
}

// ListUsers handles GET /api/users
func (uc *UserController) ListUsers(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, uc.log, err)
	}

	users, err := uc.users.List(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, uc.log, err)
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Users retrieved successfully",
		Data:    users,
	})
}

// CreateUser handles POST /api/users
func (uc *UserController) CreateUser(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, uc.log, err)
	}

	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	user, err := uc.users.Create(c.Request().Context(), actor, &req)
	if err != nil {
		return respondError(c, uc.log, err)
	}
	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "User created successfully",
		Data:    user,
	})
}

// UpdateFCMToken handles POST /api/users/fcm-token
func (uc *UserController) UpdateFCMToken(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, uc.log, err)
	}

	var req models.FCMTokenUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	if err := uc.users.UpdateFCMToken(c.Request().Context(), actor, req.FCMToken); err != nil {
		return respondError(c, uc.log, err)
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "FCM token updated successfully",
	})
}
