package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rentalops/vehicle_rental/internal/models"
	"github.com/rentalops/vehicle_rental/internal/repo"
	"github.com/rentalops/vehicle_rental/internal/transport"
)

type PaymentService struct {
	Repo *repo.GormRepo
}

func (s *PaymentService) GetPayments(ctx context.Context) ([]models.Payment, error) {
	return s.Repo.GetPayments(ctx)
}

func (s *PaymentService) GetPayment(ctx context.Context, id uint) (*models.Payment, error) {
	return s.Repo.GetPayment(ctx, id)
}

func (s *PaymentService) CreatePayment(ctx context.Context, req transport.CreatePaymentRequest) (*models.Payment, error) {
	payment := models.Payment{
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		PaymentStatus: req.PaymentStatus,
		PaymentDate:   time.Now().UTC(),
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	}
	if payment.PaymentStatus == "" {
		payment.PaymentStatus = "Completed"
	}
	if payment.TransactionID == "" {
		payment.TransactionID = uuid.NewString()
	}

	if err := s.Repo.CreatePayment(ctx, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, id uint) error {
	return s.Repo.DeletePayment(ctx, id)
}
