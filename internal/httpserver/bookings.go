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
)

type BookingHTTP struct {
	Svc *service.BookingService
}

func (h *BookingHTTP) GetBookings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "bookings_list")

	bookings, err := h.Svc.GetBookings(ctx)
	if err != nil {
		l.Error("bookings_list_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot fetch bookings")
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *BookingHTTP) GetBooking(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "bookings_get")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.Svc.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Booking not found")
		}
		l.Error("bookings_get_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot fetch booking")
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *BookingHTTP) CreateBooking(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "bookings_create")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: Token required")
	}

	req := middleware.Validated[transport.CreateBookingRequest](c)

	booking, err := h.Svc.CreateBooking(ctx, userID, *req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDates) {
			return echo.NewHTTPError(http.StatusBadRequest, service.ErrInvalidDates.Error())
		}
		l.Error("bookings_create_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create booking")
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Booking created successfully", "data": booking})
}

func (h *BookingHTTP) DeleteBooking(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "bookings_delete")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteBooking(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Booking not found")
		}
		l.Error("bookings_delete_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete booking")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Booking deleted successfully"})
}
