package service

import (
	"context"

	"github.com/rentalops/vehicle_rental/internal/models"
	"github.com/rentalops/vehicle_rental/internal/repo"
	"github.com/rentalops/vehicle_rental/internal/transport"
)

type UserService struct {
	Repo *repo.GormRepo
}

func (s *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetUsers(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.Repo.GetUser(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, req transport.UpdateUserRequest) (*models.User, error) {
	return s.Repo.PatchUser(ctx, id, req)
}

func (s *UserService) ChangeRole(ctx context.Context, id uint, role models.Role) (*models.User, error) {
	return s.Repo.UpdateUserRole(ctx, id, role)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.Repo.DeleteUser(ctx, id)
}
