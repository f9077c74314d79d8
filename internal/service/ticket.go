package service

import (
	"context"

	"github.com/rentalops/vehicle_rental/internal/models"
	"github.com/rentalops/vehicle_rental/internal/repo"
	"github.com/rentalops/vehicle_rental/internal/transport"
)

type TicketService struct {
	Repo *repo.GormRepo
}

func (s *TicketService) GetTickets(ctx context.Context) ([]models.SupportTicket, error) {
	return s.Repo.GetTickets(ctx)
}

func (s *TicketService) GetTicket(ctx context.Context, id uint) (*models.SupportTicket, error) {
	return s.Repo.GetTicket(ctx, id)
}

// CreateTicket takes the reporter from the verified session; new tickets
// always start Open.
func (s *TicketService) CreateTicket(ctx context.Context, userID uint, req transport.CreateTicketRequest) (*models.SupportTicket, error) {
	ticket := models.SupportTicket{
		UserID:      userID,
		Subject:     req.Subject,
		Description: req.Description,
		Status:      models.TicketOpen,
	}
	if err := s.Repo.CreateTicket(ctx, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (s *TicketService) DeleteTicket(ctx context.Context, id uint) error {
	return s.Repo.DeleteTicket(ctx, id)
}
