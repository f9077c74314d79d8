package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"user_id"`
	FirstName    string    `gorm:"not null"                 json:"first_name"`
	LastName     string    `gorm:"not null"                 json:"last_name"`
	Email        string    `gorm:"unique;not null"          json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	ContactPhone string    `gorm:"not null"                 json:"contact_phone"`
	Address      string    `json:"address"`
	Role         Role      `gorm:"not null;default:user"    json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type VehicleSpecification struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"vehicle_spec_id"`
	Manufacturer    string  `gorm:"not null"                 json:"manufacturer"`
	Model           string  `gorm:"not null"                 json:"model"`
	Year            int     `gorm:"not null"                 json:"year"`
	FuelType        string  `json:"fuel_type"`
	EngineCapacity  string  `json:"engine_capacity"`
	Transmission    string  `json:"transmission"`
	SeatingCapacity int     `json:"seating_capacity"`
	Color           string  `json:"color"`
	Features        string  `json:"features"`
	ImageURL        string  `json:"image_url"`
}

type Vehicle struct {
	ID            uint                 `gorm:"primaryKey;autoIncrement" json:"vehicle_id"`
	VehicleSpecID uint                 `gorm:"index;not null"           json:"vehicle_spec_id"`
	Spec          VehicleSpecification `gorm:"foreignKey:VehicleSpecID" json:"spec"`
	RentalRate    float64              `gorm:"not null"                 json:"rental_rate"`
	Availability  bool                 `gorm:"not null;default:true"    json:"availability"`
	CreatedAt     time.Time            `json:"created_at"`
}

type Booking struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"booking_id"`
	UserID        uint      `gorm:"index;not null"           json:"user_id"`
	User          User      `gorm:"foreignKey:UserID"        json:"user"`
	VehicleID     uint      `gorm:"index;not null"           json:"vehicle_id"`
	Vehicle       Vehicle   `gorm:"foreignKey:VehicleID"     json:"vehicle"`
	BookingDate   time.Time `gorm:"not null"                 json:"booking_date"`
	ReturnDate    time.Time `gorm:"not null"                 json:"return_date"`
	TotalAmount   float64   `gorm:"not null"                 json:"total_amount"`
	BookingStatus string    `gorm:"not null;default:Pending" json:"booking_status"`
	CreatedAt     time.Time `json:"created_at"`
}

const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingCompleted = "Completed"
	BookingCancelled = "Cancelled"
)

type Payment struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"    json:"payment_id"`
	BookingID     uint      `gorm:"index;not null"              json:"booking_id"`
	Booking       Booking   `gorm:"foreignKey:BookingID"        json:"-"`
	Amount        float64   `gorm:"not null"                    json:"amount"`
	PaymentStatus string    `gorm:"not null;default:Completed"  json:"payment_status"`
	PaymentDate   time.Time `gorm:"not null"                    json:"payment_date"`
	PaymentMethod string    `gorm:"not null"                    json:"payment_method"`
	TransactionID string    `gorm:"uniqueIndex;not null"        json:"transaction_id"`
}

type SupportTicket struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"ticket_id"`
	UserID      uint      `gorm:"index;not null"           json:"user_id"`
	User        User      `gorm:"foreignKey:UserID"        json:"user"`
	Subject     string    `gorm:"not null"                 json:"subject"`
	Description string    `gorm:"not null"                 json:"description"`
	Status      string    `gorm:"not null;default:Open"    json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	TicketOpen     = "Open"
	TicketResolved = "Resolved"
	TicketClosed   = "Closed"
)
