package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/yurayurastudio/studio_backend/security"
)

// RequestID tags every request with a UUID, reusing the client's X-Request-ID
func RequestID() echo.MiddlewareFunc {
	return echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// RequestLogger writes one structured log line per request
func RequestLogger(log logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// Let echo's error handler settle the status before logging it
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			fields := logrus.Fields{
				"requestId": res.Header().Get(echo.HeaderXRequestID),
				"method":    req.Method,
				"route":     c.Path(),
				"uri":       security.RedactURI(req.RequestURI),
				"status":    res.Status,
				"latency":   time.Since(start).String(),
				"remoteIp":  c.RealIP(),
			}
			if p, ok := GetPrincipal(c); ok {
				fields["userId"] = p.UserID.Hex()
			}

			entry := log.WithFields(fields)
			switch {
			case res.Status >= 500:
				entry.WithError(err).Error("Request failed")
			case res.Status >= 400:
				entry.Warn("Request rejected")
			default:
				entry.Info("Request handled")
			}
			if entry.Logger.IsLevelEnabled(logrus.TraceLevel) {
				entry.WithField("headers", security.SanitizeHeaders(req.Header)).Trace("Request headers")
			}
			return nil
		}
	}
}
