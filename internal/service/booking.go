package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rentalops/vehicle_rental/internal/events"
	"github.com/rentalops/vehicle_rental/internal/logging"
	"github.com/rentalops/vehicle_rental/internal/models"
	"github.com/rentalops/vehicle_rental/internal/repo"
	"github.com/rentalops/vehicle_rental/internal/transport"
)

var ErrInvalidDates = errors.New("return date must not be before booking date")

type BookingService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (s *BookingService) GetBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.GetBookings(ctx)
}

func (s *BookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	return s.Repo.GetBooking(ctx, id)
}

// CreateBooking takes the booking owner from the verified session, never from
// the request body. New bookings always start Pending.
func (s *BookingService) CreateBooking(ctx context.Context, userID uint, req transport.CreateBookingRequest) (*models.Booking, error) {
	l := logging.FromContext(ctx).With("svc", "booking.create")

	bookingDate, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("parse booking_date: %w", err)
	}
	returnDate, err := time.Parse("2006-01-02", req.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("parse return_date: %w", err)
	}
	if returnDate.Before(bookingDate) {
		return nil, ErrInvalidDates
	}

	booking := models.Booking{
		UserID:        userID,
		VehicleID:     req.VehicleID,
		BookingDate:   bookingDate,
		ReturnDate:    returnDate,
		TotalAmount:   req.TotalAmount,
		BookingStatus: models.BookingPending,
	}

	if err := s.Repo.CreateBooking(ctx, &booking); err != nil {
		l.Error("booking_create_error", "status", 500, "error", err)
		return nil, err
	}

	if s.Events != nil {
		pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		event := map[string]any{
			"type":       "booking_created",
			"booking_id": booking.ID,
			"user_id":    booking.UserID,
			"vehicle_id": booking.VehicleID,
			"status":     booking.BookingStatus,
		}
		if err := s.Events.PublishEvent(pubCtx, events.TopicBookingEvents, fmt.Sprint(booking.UserID), event); err != nil {
			l.Error("event_publish_error", "topic", events.TopicBookingEvents, "error", err)
		}
	}

	l.Info("booking_create_success", "booking_id", booking.ID)
	return &booking, nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, id uint) error {
	return s.Repo.DeleteBooking(ctx, id)
}
