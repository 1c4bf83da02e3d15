package http

import (
	"net/http"
	"strings"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyActorID   = "actorID"
	contextKeyActorRole = "actorRole"
)

// Claims is the JWT payload issued at login. The role travels in the token so
// route guards do not need a database round trip per request.
type Claims struct {
	UserID string `json:"user_id"`
	Login  string `json:"login"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies the bearer tokens used by the API.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given signing secret and
// token lifetime.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Generate creates a signed JWT for the given user.
func (t *TokenService) Generate(u *user.User, now time.Time) (string, error) {
	claims := Claims{
		UserID: u.ID().String(),
		Login:  u.Login(),
		Role:   u.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// AuthRequired validates the bearer token and injects the caller's identity
// into the request context.
func (t *TokenService) AuthRequired() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Authorization header required (Bearer <token>)",
				})
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(
				strings.TrimPrefix(authHeader, "Bearer "),
				claims,
				func(_ *jwt.Token) (interface{}, error) { return t.secret, nil },
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			)
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			actorID, err := kernel.UUIDFromString(claims.UserID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid token subject",
				})
			}

			role, err := kernel.RoleFromString(claims.Role)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid token role",
				})
			}

			c.Set(contextKeyActorID, actorID)
			c.Set(contextKeyActorRole, role)
			return next(c)
		}
	}
}

// RoleRequired enforces that the caller's role covers the required one.
// Admin inherits the logistician surface.
func RoleRequired(required kernel.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !actorRole(c).CanActFor(required) {
				return c.JSON(http.StatusForbidden, Error{
					Code:    http.StatusForbidden,
					Message: "Access denied. Required role: " + required.String(),
				})
			}
			return next(c)
		}
	}
}

func actorID(c echo.Context) kernel.UUID {
	id, _ := c.Get(contextKeyActorID).(kernel.UUID)
	return id
}

func actorRole(c echo.Context) kernel.Role {
	role, _ := c.Get(contextKeyActorRole).(kernel.Role)
	return role
}
