package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parking_backend/internal/feature/parkinglot/domain/entity"
	"parking_backend/internal/feature/parkinglot/usecase"
)

// spotGorm is the GORM implementation of the SpotRepository interface.
type spotGorm struct {
	db *gorm.DB
}

var _ usecase.SpotRepository = (*spotGorm)(nil)

// NewSpotRepository creates a new spotGorm backed by the given connection.
func NewSpotRepository(db *gorm.DB) *spotGorm {
	return &spotGorm{db: db}
}

// Create inserts the spot.
func (r *spotGorm) Create(ctx context.Context, spot *entity.Spot) error {
	return r.db.WithContext(ctx).Create(spot).Error
}

// FindByLot returns the spots of one lot ordered by ID.
func (r *spotGorm) FindByLot(ctx context.Context, lotID uint) ([]entity.Spot, error) {
	var spots []entity.Spot
	if err := r.db.WithContext(ctx).
		Where("parking_lot_id = ?", lotID).
		Order("id ASC").
		Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}

// FindByID retrieves a spot by ID.
// It returns usecase.ErrSpotNotFound when no spot matches.
func (r *spotGorm) FindByID(ctx context.Context, id uint) (*entity.Spot, error) {
	var spot entity.Spot
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&spot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSpotNotFound
		}
		return nil, err
	}
	return &spot, nil
}

// Save writes all fields of an existing spot back to the database.
func (r *spotGorm) Save(ctx context.Context, spot *entity.Spot) error {
	return r.db.WithContext(ctx).Save(spot).Error
}

// Delete removes a spot.
// It returns usecase.ErrSpotNotFound when no spot matches.
func (r *spotGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Spot{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrSpotNotFound
	}
	return nil
}
