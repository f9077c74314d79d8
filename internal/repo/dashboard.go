package repo

import (
	"context"
	"time"

	"github.com/rentalops/vehicle_rental/internal/models"
)

type AdminStats struct {
	TotalUsers        int64   `json:"total_users"`
	TotalVehicles     int64   `json:"total_vehicles"`
	TotalBookings     int64   `json:"total_bookings"`
	PendingBookings   int64   `json:"pending_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	AvailableVehicles int64   `json:"available_vehicles"`
}

type UserStats struct {
	TotalBookings     int64   `json:"total_bookings"`
	PendingBookings   int64   `json:"pending_bookings"`
	ActiveBookings    int64   `json:"active_bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
	TotalSpent        float64 `json:"total_spent"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

func (r *GormRepo) GetAdminStats(ctx context.Context) (*AdminStats, error) {
	db := r.DB.WithContext(ctx)
	var s AdminStats

	if err := db.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&s.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Vehicle{}).Count(&s.TotalVehicles).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Booking{}).Count(&s.TotalBookings).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Booking{}).Where("booking_status = ?", models.BookingPending).Count(&s.PendingBookings).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Booking{}).
		Where("booking_status = ?", models.BookingCompleted).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&s.TotalRevenue).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Vehicle{}).Where("availability = ?", true).Count(&s.AvailableVehicles).Error; err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *GormRepo) GetRecentBookings(ctx context.Context, limit int) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.DB.WithContext(ctx).
		Preload("User").
		Preload("Vehicle").
		Preload("Vehicle.Spec").
		Order("created_at DESC").
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetRevenueByMonth needs dialect-specific date bucketing: to_char on
// postgres, strftime on the sqlite test store.
func (r *GormRepo) GetRevenueByMonth(ctx context.Context, months int) ([]MonthlyRevenue, error) {
	since := time.Now().AddDate(0, -months, 0)

	q := r.DB.WithContext(ctx).
		Model(&models.Booking{}).
		Where("booking_status = ? AND booking_date >= ?", models.BookingCompleted, since)

	if r.DB.Dialector.Name() == "sqlite" {
		q = q.Select("strftime('%Y-%m', booking_date) AS month, SUM(total_amount) AS revenue").
			Group("strftime('%Y-%m', booking_date)").
			Order("strftime('%Y-%m', booking_date)")
	} else {
		q = q.Select("to_char(booking_date, 'Mon YYYY') AS month, SUM(total_amount) AS revenue").
			Group("to_char(booking_date, 'Mon YYYY'), date_trunc('month', booking_date)").
			Order("date_trunc('month', booking_date)")
	}

	var rows []MonthlyRevenue
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) GetUserStats(ctx context.Context, userID uint) (*UserStats, error) {
	db := r.DB.WithContext(ctx)
	var s UserStats

	if err := db.Model(&models.Booking{}).Where("user_id = ?", userID).Count(&s.TotalBookings).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Booking{}).Where("user_id = ? AND booking_status = ?", userID, models.BookingPending).Count(&s.PendingBookings).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Booking{}).Where("user_id = ? AND booking_status = ?", userID, models.BookingConfirmed).Count(&s.ActiveBookings).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Booking{}).Where("user_id = ? AND booking_status = ?", userID, models.BookingCompleted).Count(&s.CompletedBookings).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Booking{}).
		Where("user_id = ? AND booking_status = ?", userID, models.BookingCompleted).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&s.TotalSpent).Error; err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *GormRepo) GetActiveBookings(ctx context.Context, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.DB.WithContext(ctx).
		Preload("Vehicle").
		Preload("Vehicle.Spec").
		Where("user_id = ? AND booking_status IN ?", userID, []string{models.BookingPending, models.BookingConfirmed}).
		Order("booking_date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormRepo) GetBookingHistory(ctx context.Context, userID uint, limit int) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.DB.WithContext(ctx).
		Preload("Vehicle").
		Preload("Vehicle.Spec").
		Where("user_id = ? AND booking_status IN ?", userID, []string{models.BookingCompleted, models.BookingCancelled}).
		Order("created_at DESC").
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
