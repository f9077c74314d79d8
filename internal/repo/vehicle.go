package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/rentalops/vehicle_rental/internal/models"
	"github.com/rentalops/vehicle_rental/internal/transport"
)

func (r *GormRepo) GetVehicles(ctx context.Context, offset, limit int) (int64, []models.Vehicle, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Vehicle{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Vehicle
	if err := r.DB.WithContext(ctx).
		Preload("Spec").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.DB.WithContext(ctx).Preload("Spec").First(&vehicle, id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *GormRepo) CreateVehicle(ctx context.Context, v *models.Vehicle) error {
	if err := r.DB.WithContext(ctx).Create(v).Error; err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Preload("Spec").First(v, v.ID).Error
}

// CreateVehicleWithSpec inserts the specification and the vehicle in one
// transaction so a failed vehicle insert never leaves an orphan spec.
func (r *GormRepo) CreateVehicleWithSpec(ctx context.Context, spec *models.VehicleSpecification, v *models.Vehicle) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(spec).Error; err != nil {
			return err
		}
		v.VehicleSpecID = spec.ID
		if err := tx.Create(v).Error; err != nil {
			return err
		}
		v.Spec = *spec
		return nil
	})
}

func (r *GormRepo) PatchVehicle(ctx context.Context, id uint, req transport.PatchVehicleRequest) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.DB.WithContext(ctx).First(&vehicle, id).Error; err != nil {
		return nil, err
	}

	if req.RentalRate != nil {
		vehicle.RentalRate = *req.RentalRate
	}
	if req.Availability != nil {
		vehicle.Availability = *req.Availability
	}

	if err := r.DB.WithContext(ctx).Save(&vehicle).Error; err != nil {
		return nil, err
	}
	return r.GetVehicle(ctx, vehicle.ID)
}

func (r *GormRepo) PatchVehicleSpec(ctx context.Context, id uint, req transport.PatchVehicleSpecRequest) (*models.VehicleSpecification, error) {
	var spec models.VehicleSpecification
	if err := r.DB.WithContext(ctx).First(&spec, id).Error; err != nil {
		return nil, err
	}

	if req.Manufacturer != nil {
		spec.Manufacturer = *req.Manufacturer
	}
	if req.Model != nil {
		spec.Model = *req.Model
	}
	if req.Year != nil {
		spec.Year = *req.Year
	}
	if req.FuelType != nil {
		spec.FuelType = *req.FuelType
	}
	if req.EngineCapacity != nil {
		spec.EngineCapacity = *req.EngineCapacity
	}
	if req.Transmission != nil {
		spec.Transmission = *req.Transmission
	}
	if req.SeatingCapacity != nil {
		spec.SeatingCapacity = *req.SeatingCapacity
	}
	if req.Color != nil {
		spec.Color = *req.Color
	}
	if req.Features != nil {
		spec.Features = *req.Features
	}
	if req.ImageURL != nil {
		spec.ImageURL = *req.ImageURL
	}

	if err := r.DB.WithContext(ctx).Save(&spec).Error; err != nil {
		return nil, err
	}
	return &spec, nil
}

func (r *GormRepo) DeleteVehicle(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Vehicle{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
