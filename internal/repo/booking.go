package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/rentalops/vehicle_rental/internal/models"
)

func (r *GormRepo) GetBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.DB.WithContext(ctx).
		Preload("User").
		Preload("Vehicle").
		Preload("Vehicle.Spec").
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormRepo) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.DB.WithContext(ctx).
		Preload("User").
		Preload("Vehicle").
		Preload("Vehicle.Spec").
		First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *GormRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	return r.DB.WithContext(ctx).Create(b).Error
}

func (r *GormRepo) DeleteBooking(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
