package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/rentalops/vehicle_rental/internal/logging"
	"github.com/rentalops/vehicle_rental/internal/middleware"
	"github.com/rentalops/vehicle_rental/internal/models"
	"github.com/rentalops/vehicle_rental/internal/service"
	"github.com/rentalops/vehicle_rental/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users_list")

	users, err := h.Svc.GetUsers(ctx)
	if err != nil {
		l.Error("users_list_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot fetch users")
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users_get")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.Svc.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		l.Error("users_get_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot fetch user")
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users_update")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	// Non-admins may only touch their own profile.
	if role, _ := middleware.RoleFromContext(c); role != models.RoleAdmin {
		if callerID, _ := middleware.UserIDFromContext(c); callerID != id {
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden: Insufficient permissions")
		}
	}

	req := middleware.Validated[transport.UpdateUserRequest](c)

	user, err := h.Svc.UpdateUser(ctx, id, *req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		l.Error("users_update_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update user")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User updated successfully", "user": user})
}

// ChangeRole is the privileged promotion path; self-registration can never
// produce an admin account.
func (h *UserHTTP) ChangeRole(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users_change_role")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	req := middleware.Validated[transport.ChangeRoleRequest](c)
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid role")
	}

	user, err := h.Svc.ChangeRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		l.Error("users_change_role_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot change role")
	}

	l.Info("role_changed", "user_id", id, "role", role)
	return c.JSON(http.StatusOK, echo.Map{"message": "Role updated successfully", "user": user})
}

func (h *UserHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users_delete")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		l.Error("users_delete_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete user")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully"})
}
