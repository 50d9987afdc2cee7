package dto

import "parking_backend/internal/feature/parkinglot/domain/entity"

// SpotItem is the public representation of a spot. The price travels as a
// decimal string to avoid float rounding on the wire.
type SpotItem struct {
	ID           uint   `json:"id"`
	SpotType     string `json:"spot_type"`
	PricePerHour string `json:"price_per_hour"`
	ParkingLot   uint   `json:"parking_lot"`
	Occupied     bool   `json:"occupied"`
}

// NewSpotItem projects a spot entity onto its public shape.
func NewSpotItem(spot *entity.Spot) SpotItem {
	return SpotItem{
		ID:           spot.ID,
		SpotType:     string(spot.SpotType),
		PricePerHour: spot.PricePerHour.StringFixed(2),
		ParkingLot:   spot.ParkingLotID,
		Occupied:     spot.Occupied,
	}
}

// CreateSpotReq is the request body for POST /parkinglots/:id/spots.
// SpotType defaults to CAR when omitted; Occupied defaults to false.
type CreateSpotReq struct {
	SpotType     string `json:"spot_type"`
	PricePerHour string `json:"price_per_hour" binding:"required"`
	Occupied     bool   `json:"occupied"`
}

// PatchSpotReq is the request body for PATCH /spots/:id.
// Nil fields are left unchanged.
type PatchSpotReq struct {
	SpotType     *string `json:"spot_type,omitempty"`
	PricePerHour *string `json:"price_per_hour,omitempty"`
	Occupied     *bool   `json:"occupied,omitempty"`
}
