package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/rentalops/vehicle_rental/internal/logging"
	"github.com/rentalops/vehicle_rental/internal/middleware"
	"github.com/rentalops/vehicle_rental/internal/service"
	"github.com/rentalops/vehicle_rental/internal/transport"
	"github.com/rentalops/vehicle_rental/internal/util"
)

type VehicleHTTP struct {
	Svc *service.VehicleService
}

func (h *VehicleHTTP) GetVehicles(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vehicles_list")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.GetVehicles(ctx, offset, limit)
	if err != nil {
		l.Error("vehicles_list_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot fetch vehicles")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
			"has_prev":    page > 1,
			"has_next":    int64(offset+limit) < total,
		},
	})
}

func (h *VehicleHTTP) GetVehicle(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vehicles_get")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	vehicle, err := h.Svc.GetVehicle(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Vehicle not found")
		}
		l.Error("vehicles_get_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot fetch vehicle")
	}
	return c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHTTP) CreateVehicle(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vehicles_create")

	req := middleware.Validated[transport.CreateVehicleRequest](c)

	vehicle, err := h.Svc.CreateVehicle(ctx, *req)
	if err != nil {
		l.Error("vehicles_create_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create vehicle")
	}

	l.Info("vehicle_created", "vehicle_id", vehicle.ID)
	return c.JSON(http.StatusCreated, echo.Map{"message": "Vehicle created successfully", "data": vehicle})
}

func (h *VehicleHTTP) CreateVehicleWithSpec(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vehicles_create_full")

	req := middleware.Validated[transport.CreateVehicleFullRequest](c)

	vehicle, err := h.Svc.CreateVehicleWithSpec(ctx, *req)
	if err != nil {
		l.Error("vehicles_create_full_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create vehicle")
	}

	l.Info("vehicle_created", "vehicle_id", vehicle.ID)
	return c.JSON(http.StatusCreated, echo.Map{"message": "Vehicle created successfully", "data": vehicle})
}

func (h *VehicleHTTP) PatchVehicle(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vehicles_update")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	req := middleware.Validated[transport.PatchVehicleRequest](c)

	vehicle, err := h.Svc.PatchVehicle(ctx, id, *req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Vehicle not found")
		}
		l.Error("vehicles_update_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update vehicle")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Vehicle updated successfully", "data": vehicle})
}

func (h *VehicleHTTP) PatchVehicleSpec(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vehicles_update_spec")

	id, err := parseID(c, "specId")
	if err != nil {
		return err
	}

	req := middleware.Validated[transport.PatchVehicleSpecRequest](c)

	spec, err := h.Svc.PatchVehicleSpec(ctx, id, *req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Specification not found")
		}
		l.Error("vehicles_update_spec_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update specification")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Specifications updated successfully", "data": spec})
}

func (h *VehicleHTTP) DeleteVehicle(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vehicles_delete")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteVehicle(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Vehicle not found")
		}
		l.Error("vehicles_delete_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete vehicle")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Vehicle deleted successfully"})
}
