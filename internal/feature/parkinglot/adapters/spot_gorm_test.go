package adapters

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking_backend/internal/feature/parkinglot/domain/entity"
	"parking_backend/internal/feature/parkinglot/usecase"
)

func TestSpotGorm_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpotRepository(db)
	lot := createLot(t, db, "Lot1", "Addr1")

	spot := &entity.Spot{
		SpotType:     entity.SpotTypeBike,
		PricePerHour: decimal.RequireFromString("1.25"),
		ParkingLotID: lot.ID,
		UserID:       1,
	}
	require.NoError(t, repo.Create(context.Background(), spot))
	assert.NotZero(t, spot.ID)

	found, err := repo.FindByID(context.Background(), spot.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SpotTypeBike, found.SpotType)
	assert.True(t, found.PricePerHour.Equal(decimal.RequireFromString("1.25")),
		"price does not round-trip: %s", found.PricePerHour)
	assert.False(t, found.Occupied, "occupied should default to false")
}

func TestSpotGorm_FindByLot(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpotRepository(db)
	lot := createLot(t, db, "Lot1", "Addr1")
	other := createLot(t, db, "Lot2", "Addr2")

	for _, lotID := range []uint{lot.ID, lot.ID, other.ID} {
		require.NoError(t, repo.Create(context.Background(), &entity.Spot{
			SpotType:     entity.SpotTypeCar,
			PricePerHour: decimal.RequireFromString("2.00"),
			ParkingLotID: lotID,
			UserID:       1,
		}))
	}

	spots, err := repo.FindByLot(context.Background(), lot.ID)

	require.NoError(t, err)
	require.Len(t, spots, 2)
	for _, s := range spots {
		assert.Equal(t, lot.ID, s.ParkingLotID)
	}
}

func TestSpotGorm_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpotRepository(db)

	found, err := repo.FindByID(context.Background(), 999)

	assert.ErrorIs(t, err, usecase.ErrSpotNotFound)
	assert.Nil(t, found)
}

func TestSpotGorm_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpotRepository(db)
	lot := createLot(t, db, "Lot1", "Addr1")

	spot := &entity.Spot{
		SpotType:     entity.SpotTypeCar,
		PricePerHour: decimal.RequireFromString("2.00"),
		ParkingLotID: lot.ID,
		UserID:       1,
	}
	require.NoError(t, repo.Create(context.Background(), spot))

	spot.Occupied = true
	spot.PricePerHour = decimal.RequireFromString("3.50")
	require.NoError(t, repo.Save(context.Background(), spot))

	found, err := repo.FindByID(context.Background(), spot.ID)
	require.NoError(t, err)
	assert.True(t, found.Occupied)
	assert.True(t, found.PricePerHour.Equal(decimal.RequireFromString("3.50")))
}

func TestSpotGorm_Delete(t *testing.T) {
	t.Run("removes the spot", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSpotRepository(db)
		lot := createLot(t, db, "Lot1", "Addr1")

		spot := &entity.Spot{
			SpotType:     entity.SpotTypeCar,
			PricePerHour: decimal.RequireFromString("2.00"),
			ParkingLotID: lot.ID,
			UserID:       1,
		}
		require.NoError(t, repo.Create(context.Background(), spot))

		require.NoError(t, repo.Delete(context.Background(), spot.ID))

		_, err := repo.FindByID(context.Background(), spot.ID)
		assert.ErrorIs(t, err, usecase.ErrSpotNotFound)
	})

	t.Run("unknown spot returns ErrSpotNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSpotRepository(db)

		err := repo.Delete(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrSpotNotFound)
	})
}
