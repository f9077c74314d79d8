package transport

import "github.com/rentalops/vehicle_rental/internal/models"

type RegisterRequest struct {
	FirstName    string `json:"first_name"    validate:"required,min=2"`
	LastName     string `json:"last_name"     validate:"required,min=2"`
	Email        string `json:"email"         validate:"required,email"`
	Password     string `json:"password"      validate:"required,min=6"`
	ContactPhone string `json:"contact_phone" validate:"required,min=10"`
	Address      string `json:"address"`
	// Accepted for wire compatibility with older clients but never honored:
	// self-registration always produces a regular user account.
	Role string `json:"role" validate:"omitempty,oneof=user admin"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserDetails struct {
	UserID    uint        `json:"user_id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserDetails `json:"user"`
}

type UpdateUserRequest struct {
	FirstName    *string `json:"first_name"    validate:"omitempty,min=2"`
	LastName     *string `json:"last_name"     validate:"omitempty,min=2"`
	ContactPhone *string `json:"contact_phone" validate:"omitempty,min=10"`
	Address      *string `json:"address"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

type CreateVehicleRequest struct {
	VehicleSpecID uint    `json:"vehicle_spec_id" validate:"required"`
	RentalRate    float64 `json:"rental_rate"     validate:"required,gt=0"`
	Availability  *bool   `json:"availability"`
}

type VehicleSpecRequest struct {
	Manufacturer    string `json:"manufacturer"     validate:"required"`
	Model           string `json:"model"            validate:"required"`
	Year            int    `json:"year"             validate:"required,gte=1950"`
	FuelType        string `json:"fuel_type"`
	EngineCapacity  string `json:"engine_capacity"`
	Transmission    string `json:"transmission"`
	SeatingCapacity int    `json:"seating_capacity"`
	Color           string `json:"color"`
	Features        string `json:"features"`
	ImageURL        string `json:"image_url"`
}

type CreateVehicleFullRequest struct {
	Spec         VehicleSpecRequest `json:"spec"         validate:"required"`
	RentalRate   float64            `json:"rental_rate"  validate:"required,gt=0"`
	Availability *bool              `json:"availability"`
}

type PatchVehicleRequest struct {
	RentalRate   *float64 `json:"rental_rate" validate:"omitempty,gt=0"`
	Availability *bool    `json:"availability"`
}

type PatchVehicleSpecRequest struct {
	Manufacturer    *string `json:"manufacturer"`
	Model           *string `json:"model"`
	Year            *int    `json:"year" validate:"omitempty,gte=1950"`
	FuelType        *string `json:"fuel_type"`
	EngineCapacity  *string `json:"engine_capacity"`
	Transmission    *string `json:"transmission"`
	SeatingCapacity *int    `json:"seating_capacity"`
	Color           *string `json:"color"`
	Features        *string `json:"features"`
	ImageURL        *string `json:"image_url"`
}

type CreateBookingRequest struct {
	VehicleID   uint    `json:"vehicle_id"   validate:"required"`
	BookingDate string  `json:"booking_date" validate:"required,datetime=2006-01-02"`
	ReturnDate  string  `json:"return_date"  validate:"required,datetime=2006-01-02"`
	TotalAmount float64 `json:"total_amount" validate:"required,gt=0"`
}

type CreatePaymentRequest struct {
	BookingID     uint    `json:"booking_id"     validate:"required"`
	Amount        float64 `json:"amount"         validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	PaymentStatus string  `json:"payment_status" validate:"omitempty,oneof=Pending Completed Failed Refunded"`
	TransactionID string  `json:"transaction_id"`
}

type CreateTicketRequest struct {
	Subject     string `json:"subject"     validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=10"`
}
