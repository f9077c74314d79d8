package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentalops/vehicle_rental/internal/logging"
	"github.com/rentalops/vehicle_rental/internal/middleware"
	"github.com/rentalops/vehicle_rental/internal/service"
	"github.com/rentalops/vehicle_rental/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	req := middleware.Validated[transport.RegisterRequest](c)

	if err := h.Svc.Register(ctx, *req); err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			return echo.NewHTTPError(http.StatusConflict, "Email already exists")
		}
		l.Error("register_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "User registered successfully"})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	req := middleware.Validated[transport.LoginRequest](c)

	token, user, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
		}
		l.Error("login_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	return c.JSON(http.StatusOK, transport.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: transport.UserDetails{
			UserID:    user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Role:      user.Role,
		},
	})
}
