// Package usecase implements the business logic for parking lots and spots.
package usecase

import (
	"context"

	authentity "parking_backend/internal/feature/auth/domain/entity"
	"parking_backend/internal/feature/parkinglot/domain/entity"
)

// ParkingLotRepository abstracts the persistence layer for parking lots.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
//
// Authorization is a precondition of Create: the usecase verifies the caller's
// privilege exactly once before calling it, so the repository performs no
// privilege checks of its own.
type ParkingLotRepository interface {
	Create(ctx context.Context, lot *entity.ParkingLot) error
	FindAll(ctx context.Context) ([]entity.ParkingLot, error)
	FindByID(ctx context.Context, id uint) (*entity.ParkingLot, error)
	Save(ctx context.Context, lot *entity.ParkingLot) error
	// Delete removes the lot and all of its spots.
	Delete(ctx context.Context, id uint) error
}

// UserReader is the slice of the user repository this feature needs to
// resolve the authenticated caller.
type UserReader interface {
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
}

// LotPatch carries the fields of a partial update. Nil fields keep their
// stored value.
type LotPatch struct {
	Name    *string
	Address *string
}

// ParkingLotUsecase provides the operations on the parking lot collection.
type ParkingLotUsecase struct {
	lots  ParkingLotRepository
	users UserReader
}

// NewParkingLotUsecase creates a new ParkingLotUsecase.
func NewParkingLotUsecase(lots ParkingLotRepository, users UserReader) *ParkingLotUsecase {
	return &ParkingLotUsecase{lots: lots, users: users}
}

// CreateLot creates a parking lot owned by the given user. Only superusers
// may create lots; this is the single place that rule is enforced.
func (u *ParkingLotUsecase) CreateLot(ctx context.Context, userID uint, name, address string) (*entity.ParkingLot, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsSuperuser {
		return nil, ErrNotSuperuser
	}

	lot := &entity.ParkingLot{
		Name:    name,
		Address: address,
		UserID:  user.ID,
	}
	if err := u.lots.Create(ctx, lot); err != nil {
		return nil, err
	}
	return lot, nil
}

// ListLots returns every parking lot. Any authenticated user sees all lots;
// there is no per-user scoping.
func (u *ParkingLotUsecase) ListLots(ctx context.Context) ([]entity.ParkingLot, error) {
	return u.lots.FindAll(ctx)
}

// GetLot returns one parking lot by ID.
func (u *ParkingLotUsecase) GetLot(ctx context.Context, id uint) (*entity.ParkingLot, error) {
	return u.lots.FindByID(ctx, id)
}

// UpdateLot replaces name and address of an existing lot. The owner is
// never changed by an update.
func (u *ParkingLotUsecase) UpdateLot(ctx context.Context, id uint, name, address string) (*entity.ParkingLot, error) {
	lot, err := u.lots.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lot.Name = name
	lot.Address = address
	if err := u.lots.Save(ctx, lot); err != nil {
		return nil, err
	}
	return lot, nil
}

// PatchLot merges the provided fields into an existing lot. Omitted fields
// retain their stored values.
func (u *ParkingLotUsecase) PatchLot(ctx context.Context, id uint, patch LotPatch) (*entity.ParkingLot, error) {
	lot, err := u.lots.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		lot.Name = *patch.Name
	}
	if patch.Address != nil {
		lot.Address = *patch.Address
	}
	if err := u.lots.Save(ctx, lot); err != nil {
		return nil, err
	}
	return lot, nil
}

// DeleteLot removes a parking lot and, through the repository, all of its
// spots.
func (u *ParkingLotUsecase) DeleteLot(ctx context.Context, id uint) error {
	return u.lots.Delete(ctx, id)
}
