package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentalops/vehicle_rental/internal/models"
	"github.com/rentalops/vehicle_rental/internal/transport"
)

func TestPaymentService_CreatePayment_Defaults(t *testing.T) {
	t.Parallel()

	svc := &PaymentService{Repo: newTestRepo(t)}

	payment, err := svc.CreatePayment(context.Background(), transport.CreatePaymentRequest{
		BookingID:     1,
		Amount:        480,
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	require.NotNil(t, payment)

	assert.Equal(t, "Completed", payment.PaymentStatus)
	assert.NotEmpty(t, payment.TransactionID)
	assert.False(t, payment.PaymentDate.IsZero())
}

func TestPaymentService_CreatePayment_KeepsExplicitValues(t *testing.T) {
	t.Parallel()

	svc := &PaymentService{Repo: newTestRepo(t)}

	payment, err := svc.CreatePayment(context.Background(), transport.CreatePaymentRequest{
		BookingID:     1,
		Amount:        480,
		PaymentMethod: "card",
		PaymentStatus: "Pending",
		TransactionID: "txn-123",
	})
	require.NoError(t, err)

	assert.Equal(t, "Pending", payment.PaymentStatus)
	assert.Equal(t, "txn-123", payment.TransactionID)
}

func TestTicketService_CreateTicket_StartsOpen(t *testing.T) {
	t.Parallel()

	svc := &TicketService{Repo: newTestRepo(t)}

	ticket, err := svc.CreateTicket(context.Background(), 9, transport.CreateTicketRequest{
		Subject:     "Flat tire",
		Description: "The rear left tire went flat on the highway.",
	})
	require.NoError(t, err)
	require.NotNil(t, ticket)

	assert.Equal(t, uint(9), ticket.UserID)
	assert.Equal(t, models.TicketOpen, ticket.Status)
	assert.NotZero(t, ticket.ID)
}
