package service

import (
	"context"

	"github.com/rentalops/vehicle_rental/internal/logging"
	"github.com/rentalops/vehicle_rental/internal/models"
	"github.com/rentalops/vehicle_rental/internal/repo"
	"github.com/rentalops/vehicle_rental/internal/transport"
)

// VehicleIndexer keeps the search index in sync with the catalog. Indexing is
// best-effort: a failed index write is logged, the vehicle write stands.
type VehicleIndexer interface {
	IndexVehicle(ctx context.Context, v *models.Vehicle) error
	DeleteVehicle(ctx context.Context, id uint) error
}

type VehicleService struct {
	Repo    *repo.GormRepo
	Indexer VehicleIndexer
}

func (s *VehicleService) GetVehicles(ctx context.Context, offset, limit int) (int64, []models.Vehicle, error) {
	return s.Repo.GetVehicles(ctx, offset, limit)
}

func (s *VehicleService) GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error) {
	return s.Repo.GetVehicle(ctx, id)
}

func (s *VehicleService) CreateVehicle(ctx context.Context, req transport.CreateVehicleRequest) (*models.Vehicle, error) {
	vehicle := models.Vehicle{
		VehicleSpecID: req.VehicleSpecID,
		RentalRate:    req.RentalRate,
		Availability:  true,
	}
	if req.Availability != nil {
		vehicle.Availability = *req.Availability
	}

	if err := s.Repo.CreateVehicle(ctx, &vehicle); err != nil {
		return nil, err
	}
	s.index(ctx, &vehicle)
	return &vehicle, nil
}

func (s *VehicleService) CreateVehicleWithSpec(ctx context.Context, req transport.CreateVehicleFullRequest) (*models.Vehicle, error) {
	spec := models.VehicleSpecification{
		Manufacturer:    req.Spec.Manufacturer,
		Model:           req.Spec.Model,
		Year:            req.Spec.Year,
		FuelType:        req.Spec.FuelType,
		EngineCapacity:  req.Spec.EngineCapacity,
		Transmission:    req.Spec.Transmission,
		SeatingCapacity: req.Spec.SeatingCapacity,
		Color:           req.Spec.Color,
		Features:        req.Spec.Features,
		ImageURL:        req.Spec.ImageURL,
	}
	vehicle := models.Vehicle{
		RentalRate:   req.RentalRate,
		Availability: true,
	}
	if req.Availability != nil {
		vehicle.Availability = *req.Availability
	}

	if err := s.Repo.CreateVehicleWithSpec(ctx, &spec, &vehicle); err != nil {
		return nil, err
	}
	s.index(ctx, &vehicle)
	return &vehicle, nil
}

func (s *VehicleService) PatchVehicle(ctx context.Context, id uint, req transport.PatchVehicleRequest) (*models.Vehicle, error) {
	vehicle, err := s.Repo.PatchVehicle(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.index(ctx, vehicle)
	return vehicle, nil
}

func (s *VehicleService) PatchVehicleSpec(ctx context.Context, id uint, req transport.PatchVehicleSpecRequest) (*models.VehicleSpecification, error) {
	return s.Repo.PatchVehicleSpec(ctx, id, req)
}

func (s *VehicleService) DeleteVehicle(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteVehicle(ctx, id); err != nil {
		return err
	}
	if s.Indexer != nil {
		if err := s.Indexer.DeleteVehicle(ctx, id); err != nil {
			logging.FromContext(ctx).Error("index_delete_error", "vehicle_id", id, "error", err)
		}
	}
	return nil
}

func (s *VehicleService) index(ctx context.Context, v *models.Vehicle) {
	if s.Indexer == nil {
		return
	}
	if err := s.Indexer.IndexVehicle(ctx, v); err != nil {
		logging.FromContext(ctx).Error("index_error", "vehicle_id", v.ID, "error", err)
	}
}
