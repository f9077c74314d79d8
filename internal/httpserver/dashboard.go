package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentalops/vehicle_rental/internal/logging"
	"github.com/rentalops/vehicle_rental/internal/middleware"
	"github.com/rentalops/vehicle_rental/internal/service"
)

type DashboardHTTP struct {
	Svc *service.DashboardService
}

func (h *DashboardHTTP) GetAdminDashboard(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "dashboard_admin")

	stats, err := h.Svc.GetAdminDashboard(ctx)
	if err != nil {
		l.Error("dashboard_admin_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot fetch dashboard")
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *DashboardHTTP) GetUserDashboard(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "dashboard_user")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: Token required")
	}

	stats, err := h.Svc.GetUserDashboard(ctx, userID)
	if err != nil {
		l.Error("dashboard_user_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot fetch dashboard")
	}
	return c.JSON(http.StatusOK, stats)
}
