package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/rentalops/vehicle_rental/internal/models"
)

func (r *GormRepo) GetTickets(ctx context.Context) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	if err := r.DB.WithContext(ctx).Preload("User").Order("id ASC").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *GormRepo) GetTicket(ctx context.Context, id uint) (*models.SupportTicket, error) {
	var ticket models.SupportTicket
	if err := r.DB.WithContext(ctx).Preload("User").First(&ticket, id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *GormRepo) CreateTicket(ctx context.Context, t *models.SupportTicket) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *GormRepo) DeleteTicket(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.SupportTicket{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
