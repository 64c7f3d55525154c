package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/yurayurastudio/studio_backend/middleware"
	"github.com/yurayurastudio/studio_backend/models"
	"github.com/yurayurastudio/studio_backend/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errUnauthenticated = errors.New("authentication required")

// respondError maps service errors to HTTP statuses. Unexpected errors are
// logged with the request id and hidden behind a generic message.
func respondError(c echo.Context, log logrus.FieldLogger, err error) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid reward distribution",
			Data: map[string]interface{}{
				"total":  verr.Total,
				"fields": verr.Fields,
			},
		})
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errUnauthenticated), errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidInput):
		status = http.StatusBadRequest
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.WithError(err).WithFields(logrus.Fields{
			"requestId": c.Response().Header().Get(echo.HeaderXRequestID),
			"route":     c.Path(),
		}).Error("Request failed")
		message = "Internal server error"
	}

	return c.JSON(status, models.Response{
		Status:  status,
		Message: message,
	})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, models.Response{
		Status:  http.StatusBadRequest,
		Message: message,
	})
}

func principalFrom(c echo.Context) (services.Principal, error) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return services.Principal{}, errUnauthenticated
	}
	return p, nil
}

func objectIDParam(c echo.Context, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid %s", services.ErrInvalidInput, name)
	}
	return id, nil
}
