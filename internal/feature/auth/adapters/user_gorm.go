// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parking_backend/internal/feature/auth/domain/entity"
	"parking_backend/internal/feature/auth/usecase"
	parkingentity "parking_backend/internal/feature/parkinglot/domain/entity"
)

// userGorm is the GORM implementation of the UserRepository interface.
// It relies on gorm.Config{TranslateError: true} so uniqueness violations
// surface as gorm.ErrDuplicatedKey on every supported driver.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm implements usecase.UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository creates a new userGorm backed by the given connection.
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. A duplicate email is reported as
// usecase.ErrEmailAlreadyExists.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// Save writes all fields of an existing user back to the database.
func (r *userGorm) Save(ctx context.Context, u *entity.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// FindByEmail retrieves a user by email address.
// It returns usecase.ErrUserNotFound when no user matches.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
// It returns usecase.ErrUserNotFound when no user matches.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Delete removes a user together with the parking lots and spots that
// reference it. The cascade runs in one transaction so a partial delete
// never becomes visible.
func (r *userGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&parkingentity.Spot{}).Error; err != nil {
			return err
		}
		var lotIDs []uint
		if err := tx.Model(&parkingentity.ParkingLot{}).
			Where("user_id = ?", id).
			Pluck("id", &lotIDs).Error; err != nil {
			return err
		}
		if len(lotIDs) > 0 {
			if err := tx.Where("parking_lot_id IN ?", lotIDs).Delete(&parkingentity.Spot{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", lotIDs).Delete(&parkingentity.ParkingLot{}).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&entity.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrUserNotFound
		}
		return nil
	})
}
