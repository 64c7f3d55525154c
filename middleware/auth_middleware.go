// middleware/auth_middleware.go
package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yurayurastudio/studio_backend/models"
	"github.com/yurayurastudio/studio_backend/services"
)

// Authorize rejects the request unless check, a services.Policy method,
// allows the authenticated caller
func Authorize(check func(services.Principal) error) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := GetPrincipal(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Status:  http.StatusUnauthorized,
					Message: "Please provide valid credentials",
				})
			}

			if err := check(principal); err != nil {
				if !errors.Is(err, services.ErrForbidden) {
					return err
				}
				return c.JSON(http.StatusForbidden, models.Response{
					Status:  http.StatusForbidden,
					Message: "Access denied for your role",
				})
			}
			return next(c)
		}
	}
}
