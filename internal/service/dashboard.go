package service

import (
	"context"

	"github.com/rentalops/vehicle_rental/internal/models"
	"github.com/rentalops/vehicle_rental/internal/repo"
)

type AdminDashboard struct {
	Stats          repo.AdminStats       `json:"stats"`
	RecentBookings []models.Booking      `json:"recent_bookings"`
	RevenueByMonth []repo.MonthlyRevenue `json:"revenue_by_month"`
}

type UserDashboard struct {
	Stats          repo.UserStats   `json:"stats"`
	ActiveBookings []models.Booking `json:"active_bookings"`
	BookingHistory []models.Booking `json:"booking_history"`
}

type DashboardService struct {
	Repo *repo.GormRepo
}

func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboard, error) {
	stats, err := s.Repo.GetAdminStats(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.Repo.GetRecentBookings(ctx, 5)
	if err != nil {
		return nil, err
	}
	revenue, err := s.Repo.GetRevenueByMonth(ctx, 6)
	if err != nil {
		return nil, err
	}
	return &AdminDashboard{
		Stats:          *stats,
		RecentBookings: recent,
		RevenueByMonth: revenue,
	}, nil
}

func (s *DashboardService) GetUserDashboard(ctx context.Context, userID uint) (*UserDashboard, error) {
	stats, err := s.Repo.GetUserStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	active, err := s.Repo.GetActiveBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	history, err := s.Repo.GetBookingHistory(ctx, userID, 10)
	if err != nil {
		return nil, err
	}
	return &UserDashboard{
		Stats:          *stats,
		ActiveBookings: active,
		BookingHistory: history,
	}, nil
}
