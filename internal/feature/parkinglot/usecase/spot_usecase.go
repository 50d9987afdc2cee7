package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"parking_backend/internal/feature/parkinglot/domain/entity"
)

// maxPrice is the largest value that fits the decimal(8,2) price column.
var maxPrice = decimal.RequireFromString("999999.99")

// SpotRepository abstracts the persistence layer for spots.
type SpotRepository interface {
	Create(ctx context.Context, spot *entity.Spot) error
	FindByLot(ctx context.Context, lotID uint) ([]entity.Spot, error)
	FindByID(ctx context.Context, id uint) (*entity.Spot, error)
	Save(ctx context.Context, spot *entity.Spot) error
	Delete(ctx context.Context, id uint) error
}

// SpotPatch carries the fields of a partial spot update. Nil fields keep
// their stored value. Occupancy is last-writer-wins; no transition rules
// apply.
type SpotPatch struct {
	SpotType     *entity.SpotType
	PricePerHour *decimal.Decimal
	Occupied     *bool
}

// SpotUsecase provides the operations on spots within parking lots.
type SpotUsecase struct {
	spots SpotRepository
	lots  ParkingLotRepository
}

// NewSpotUsecase creates a new SpotUsecase.
func NewSpotUsecase(spots SpotRepository, lots ParkingLotRepository) *SpotUsecase {
	return &SpotUsecase{spots: spots, lots: lots}
}

// validatePrice checks that the price fits the decimal(8,2) column.
func validatePrice(p decimal.Decimal) error {
	if p.IsNegative() || !p.Equal(p.Round(2)) || p.GreaterThan(maxPrice) {
		return ErrInvalidPrice
	}
	return nil
}

// CreateSpot adds a spot to an existing lot, recording the calling user.
// An empty spot type defaults to CAR; occupancy starts false unless set.
func (u *SpotUsecase) CreateSpot(ctx context.Context, userID, lotID uint, spotType entity.SpotType, pricePerHour decimal.Decimal, occupied bool) (*entity.Spot, error) {
	if _, err := u.lots.FindByID(ctx, lotID); err != nil {
		return nil, err
	}
	if spotType == "" {
		spotType = entity.SpotTypeCar
	}
	if !spotType.Valid() {
		return nil, ErrInvalidSpotType
	}
	if err := validatePrice(pricePerHour); err != nil {
		return nil, err
	}

	spot := &entity.Spot{
		SpotType:     spotType,
		PricePerHour: pricePerHour,
		ParkingLotID: lotID,
		Occupied:     occupied,
		UserID:       userID,
	}
	if err := u.spots.Create(ctx, spot); err != nil {
		return nil, err
	}
	return spot, nil
}

// ListSpots returns the spots of one lot. The lot must exist.
func (u *SpotUsecase) ListSpots(ctx context.Context, lotID uint) ([]entity.Spot, error) {
	if _, err := u.lots.FindByID(ctx, lotID); err != nil {
		return nil, err
	}
	return u.spots.FindByLot(ctx, lotID)
}

// GetSpot returns one spot by ID.
func (u *SpotUsecase) GetSpot(ctx context.Context, id uint) (*entity.Spot, error) {
	return u.spots.FindByID(ctx, id)
}

// PatchSpot merges the provided fields into an existing spot.
func (u *SpotUsecase) PatchSpot(ctx context.Context, id uint, patch SpotPatch) (*entity.Spot, error) {
	spot, err := u.spots.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.SpotType != nil {
		if !patch.SpotType.Valid() {
			return nil, ErrInvalidSpotType
		}
		spot.SpotType = *patch.SpotType
	}
	if patch.PricePerHour != nil {
		if err := validatePrice(*patch.PricePerHour); err != nil {
			return nil, err
		}
		spot.PricePerHour = *patch.PricePerHour
	}
	if patch.Occupied != nil {
		spot.Occupied = *patch.Occupied
	}
	if err := u.spots.Save(ctx, spot); err != nil {
		return nil, err
	}
	return spot, nil
}

// DeleteSpot removes a spot.
func (u *SpotUsecase) DeleteSpot(ctx context.Context, id uint) error {
	return u.spots.Delete(ctx, id)
}
