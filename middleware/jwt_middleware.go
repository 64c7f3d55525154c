// middleware/jwt_middleware.go
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/yurayurastudio/studio_backend/models"
	"github.com/yurayurastudio/studio_backend/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const principalKey = "principal"

// JwtCustomClaims for JWT token
type JwtCustomClaims struct {
	UserID string      `json:"userId"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.StandardClaims
}

// Principal converts the claims into the caller identity used by services
func (c *JwtCustomClaims) Principal() (services.Principal, error) {
	id, err := primitive.ObjectIDFromHex(c.UserID)
	if err != nil {
		return services.Principal{}, fmt.Errorf("invalid user id in token: %w", err)
	}
	if !c.Role.Valid() {
		return services.Principal{}, fmt.Errorf("invalid role %q in token", c.Role)
	}
	return services.Principal{UserID: id, Email: c.Email, Role: c.Role}, nil
}

// JWTAuth signs and verifies HS256 access tokens
type JWTAuth struct {
	secret []byte
	ttl    time.Duration
	log    logrus.FieldLogger
}

func NewJWTAuth(secret string, ttl time.Duration, log logrus.FieldLogger) *JWTAuth {
	return &JWTAuth{secret: []byte(secret), ttl: ttl, log: log}
}

// Issue implements services.TokenIssuer
func (a *JWTAuth) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := &JwtCustomClaims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(a.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Parse validates a raw token, as sent by clients that cannot set headers
func (a *JWTAuth) Parse(raw string) (services.Principal, error) {
	token, err := jwt.ParseWithClaims(raw, &JwtCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return a.secret, nil
	})
	if err != nil {
		return services.Principal{}, err
	}
	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok || !token.Valid {
		return services.Principal{}, errors.New("invalid token")
	}
	return claims.Principal()
}

// Middleware requires a valid bearer token and stores the caller's Principal
func (a *JWTAuth) Middleware() echo.MiddlewareFunc {
	return middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: a.secret,
		Claims:     &JwtCustomClaims{},
		SuccessHandler: func(c echo.Context) {
			user := c.Get("user").(*jwt.Token)
			claims := user.Claims.(*JwtCustomClaims)

			principal, err := claims.Principal()
			if err != nil {
				a.log.WithError(err).Warn("Rejected token with malformed claims")
				return
			}
			c.Set(principalKey, principal)
		},
		ErrorHandler: func(err error) error {
			a.log.WithError(err).Debug("JWT validation failed")
			return echo.NewHTTPError(http.StatusUnauthorized, "Please provide valid credentials")
		},
	})
}

// RequirePrincipal rejects requests whose token carried unusable claims
func RequirePrincipal() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := GetPrincipal(c); !ok {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Status:  http.StatusUnauthorized,
					Message: "Please provide valid credentials",
				})
			}
			return next(c)
		}
	}
}

// GetPrincipal returns the authenticated caller set by the JWT middleware
func GetPrincipal(c echo.Context) (services.Principal, bool) {
	p, ok := c.Get(principalKey).(services.Principal)
	return p, ok
}
