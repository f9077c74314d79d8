package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mw "github.com/rentalops/vehicle_rental/internal/middleware"
	"github.com/rentalops/vehicle_rental/internal/transport"
)

type Deps struct {
	Auth      *mw.Auth
	AuthHTTP  *AuthHTTP
	Users     *UserHTTP
	Vehicles  *VehicleHTTP
	Search    *SearchHTTP
	Bookings  *BookingHTTP
	Payments  *PaymentHTTP
	Tickets   *TicketHTTP
	Dashboard *DashboardHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"message": "Welcome to Vehicle Rental Management System API",
			"version": "1.0.0",
			"status":  "running",
		})
	})
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHTTP.Register, mw.ValidateBody[transport.RegisterRequest]())
	auth.POST("/login", d.AuthHTTP.Login, mw.ValidateBody[transport.LoginRequest]())

	users := api.Group("/users")
	users.GET("", d.Users.GetUsers, d.Auth.AdminOnly)
	users.GET("/:id", d.Users.GetUser, d.Auth.Authenticated)
	users.PUT("/:id", d.Users.UpdateUser, d.Auth.Authenticated, mw.ValidateBody[transport.UpdateUserRequest]())
	users.PATCH("/:id/role", d.Users.ChangeRole, d.Auth.AdminOnly, mw.ValidateBody[transport.ChangeRoleRequest]())
	users.DELETE("/:id", d.Users.DeleteUser, d.Auth.AdminOnly)

	vehicles := api.Group("/vehicles")
	vehicles.GET("", d.Vehicles.GetVehicles)
	vehicles.GET("/search", d.Search.SearchVehicles)
	vehicles.GET("/:id", d.Vehicles.GetVehicle)
	vehicles.POST("", d.Vehicles.CreateVehicle, d.Auth.AdminOnly, mw.ValidateBody[transport.CreateVehicleRequest]())
	vehicles.POST("/full", d.Vehicles.CreateVehicleWithSpec, d.Auth.AdminOnly, mw.ValidateBody[transport.CreateVehicleFullRequest]())
	vehicles.PUT("/:id", d.Vehicles.PatchVehicle, d.Auth.AdminOnly, mw.ValidateBody[transport.PatchVehicleRequest]())
	vehicles.PUT("/specs/:specId", d.Vehicles.PatchVehicleSpec, d.Auth.AdminOnly, mw.ValidateBody[transport.PatchVehicleSpecRequest]())
	vehicles.DELETE("/:id", d.Vehicles.DeleteVehicle, d.Auth.AdminOnly)

	bookings := api.Group("/bookings")
	bookings.GET("", d.Bookings.GetBookings, d.Auth.AdminOnly)
	bookings.GET("/:id", d.Bookings.GetBooking, d.Auth.Authenticated)
	bookings.POST("", d.Bookings.CreateBooking, d.Auth.Authenticated, mw.ValidateBody[transport.CreateBookingRequest]())
	bookings.DELETE("/:id", d.Bookings.DeleteBooking, d.Auth.AdminOnly)

	payments := api.Group("/payments")
	payments.GET("", d.Payments.GetPayments, d.Auth.AdminOnly)
	payments.GET("/:id", d.Payments.GetPayment, d.Auth.Authenticated)
	payments.POST("", d.Payments.CreatePayment, d.Auth.Authenticated, mw.ValidateBody[transport.CreatePaymentRequest]())
	payments.DELETE("/:id", d.Payments.DeletePayment, d.Auth.AdminOnly)

	tickets := api.Group("/tickets")
	tickets.GET("", d.Tickets.GetTickets, d.Auth.AdminOnly)
	tickets.GET("/:id", d.Tickets.GetTicket, d.Auth.Authenticated)
	tickets.POST("", d.Tickets.CreateTicket, d.Auth.Authenticated, mw.ValidateBody[transport.CreateTicketRequest]())
	tickets.DELETE("/:id", d.Tickets.DeleteTicket, d.Auth.AdminOnly)

	dashboard := api.Group("/dashboard")
	// Stacked on purpose: authentication first, then the role gate, so an
	// unauthenticated caller gets 401 and never 403.
	dashboard.GET("/admin", d.Dashboard.GetAdminDashboard, d.Auth.Authenticated, mw.RequireAdmin)
	dashboard.GET("/user", d.Dashboard.GetUserDashboard, d.Auth.Authenticated)
}
