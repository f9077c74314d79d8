package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rentalops/vehicle_rental/internal/models"
	"github.com/rentalops/vehicle_rental/internal/tokens"
)

const (
	ctxUserID = "user_id"
	ctxEmail  = "email"
	ctxRole   = "role"
)

type Auth struct {
	JWTSecret []byte
}

func NewAuth(secret []byte) *Auth {
	return &Auth{JWTSecret: secret}
}

func (a *Auth) authenticate(c echo.Context) (*tokens.SessionClaims, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: Token required")
	}

	claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "), a.JWTSecret)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: Invalid token")
	}
	return claims, nil
}

func setIdentity(c echo.Context, claims *tokens.SessionClaims) {
	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxEmail, claims.Email)
	c.Set(ctxRole, claims.Role)
}

// Authenticated admits any valid session regardless of role.
func (a *Auth) Authenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := a.authenticate(c)
		if err != nil {
			return err
		}
		setIdentity(c, claims)
		return next(c)
	}
}

// Require admits only sessions whose decoded role matches exactly.
// Authentication is checked first, so a missing or bad token is always 401,
// never 403.
func (a *Auth) Require(role models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := a.authenticate(c)
			if err != nil {
				return err
			}
			setIdentity(c, claims)
			if claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden: Insufficient permissions")
			}
			return next(c)
		}
	}
}

func (a *Auth) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return a.Require(models.RoleAdmin)(next)
}

func (a *Auth) UserOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return a.Require(models.RoleUser)(next)
}

// RequireAdmin is a second-stage check for routes that stack policies. It only
// reads the identity attached by an earlier Authenticated/Require middleware.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := RoleFromContext(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: Token required")
		}
		if role != models.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden: Admin access required")
		}
		return next(c)
	}
}

func UserIDFromContext(c echo.Context) (uint, bool) {
	id, ok := c.Get(ctxUserID).(uint)
	return id, ok
}

func RoleFromContext(c echo.Context) (models.Role, bool) {
	role, ok := c.Get(ctxRole).(models.Role)
	return role, ok
}

func EmailFromContext(c echo.Context) (string, bool) {
	email, ok := c.Get(ctxEmail).(string)
	return email, ok
}
