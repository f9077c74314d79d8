package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/rentalops/vehicle_rental/internal/models"
)

func (r *GormRepo) GetPayments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *GormRepo) GetPayment(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.DB.WithContext(ctx).First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *GormRepo) CreatePayment(ctx context.Context, p *models.Payment) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *GormRepo) DeletePayment(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Payment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
