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

type TicketHTTP struct {
	Svc *service.TicketService
}

func (h *TicketHTTP) GetTickets(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "tickets_list")

	tickets, err := h.Svc.GetTickets(ctx)
	if err != nil {
		l.Error("tickets_list_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot fetch tickets")
	}
	return c.JSON(http.StatusOK, tickets)
}

func (h *TicketHTTP) GetTicket(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "tickets_get")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	ticket, err := h.Svc.GetTicket(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Ticket not found")
		}
		l.Error("tickets_get_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot fetch ticket")
	}
	return c.JSON(http.StatusOK, ticket)
}

func (h *TicketHTTP) CreateTicket(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "tickets_create")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: Token required")
	}

	req := middleware.Validated[transport.CreateTicketRequest](c)

	ticket, err := h.Svc.CreateTicket(ctx, userID, *req)
	if err != nil {
		l.Error("tickets_create_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create ticket")
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Ticket created successfully", "data": ticket})
}

func (h *TicketHTTP) DeleteTicket(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "tickets_delete")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteTicket(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Ticket not found")
		}
		l.Error("tickets_delete_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete ticket")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Ticket deleted successfully"})
}
