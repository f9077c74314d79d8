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

type PaymentHTTP struct {
	Svc *service.PaymentService
}

func (h *PaymentHTTP) GetPayments(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payments_list")

	payments, err := h.Svc.GetPayments(ctx)
	if err != nil {
		l.Error("payments_list_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot fetch payments")
	}
	return c.JSON(http.StatusOK, payments)
}

func (h *PaymentHTTP) GetPayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payments_get")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	payment, err := h.Svc.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Payment not found")
		}
		l.Error("payments_get_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot fetch payment")
	}
	return c.JSON(http.StatusOK, payment)
}

func (h *PaymentHTTP) CreatePayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payments_create")

	req := middleware.Validated[transport.CreatePaymentRequest](c)

	payment, err := h.Svc.CreatePayment(ctx, *req)
	if err != nil {
		l.Error("payments_create_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot record payment")
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Payment recorded successfully", "data": payment})
}

func (h *PaymentHTTP) DeletePayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payments_delete")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeletePayment(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Payment not found")
		}
		l.Error("payments_delete_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete payment")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Payment deleted successfully"})
}
