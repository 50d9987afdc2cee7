// Package adapters provides the repository implementations for the parkinglot feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parking_backend/internal/feature/parkinglot/domain/entity"
	"parking_backend/internal/feature/parkinglot/usecase"
)

// parkingLotGorm is the GORM implementation of the ParkingLotRepository
// interface. It performs no authorization; callers are assumed to be
// authorized by the usecase layer.
type parkingLotGorm struct {
	db *gorm.DB
}

var _ usecase.ParkingLotRepository = (*parkingLotGorm)(nil)

// NewParkingLotRepository creates a new parkingLotGorm backed by the given
// connection.
func NewParkingLotRepository(db *gorm.DB) *parkingLotGorm {
	return &parkingLotGorm{db: db}
}

// Create inserts the parking lot.
func (r *parkingLotGorm) Create(ctx context.Context, lot *entity.ParkingLot) error {
	return r.db.WithContext(ctx).Create(lot).Error
}

// FindAll returns every parking lot ordered by ID.
func (r *parkingLotGorm) FindAll(ctx context.Context) ([]entity.ParkingLot, error) {
	var lots []entity.ParkingLot
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&lots).Error; err != nil {
		return nil, err
	}
	return lots, nil
}

// FindByID retrieves a parking lot by ID.
// It returns usecase.ErrLotNotFound when no lot matches.
func (r *parkingLotGorm) FindByID(ctx context.Context, id uint) (*entity.ParkingLot, error) {
	var lot entity.ParkingLot
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&lot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrLotNotFound
		}
		return nil, err
	}
	return &lot, nil
}

// Save writes all fields of an existing parking lot back to the database.
func (r *parkingLotGorm) Save(ctx context.Context, lot *entity.ParkingLot) error {
	return r.db.WithContext(ctx).Save(lot).Error
}

// Delete removes a parking lot and its spots in one transaction.
// It returns usecase.ErrLotNotFound when no lot matches.
func (r *parkingLotGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parking_lot_id = ?", id).Delete(&entity.Spot{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&entity.ParkingLot{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrLotNotFound
		}
		return nil
	})
}
