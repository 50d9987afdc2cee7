// Package dto defines data transfer objects for the parkinglot feature's HTTP transport layer.
package dto

import "parking_backend/internal/feature/parkinglot/domain/entity"

// ParkingLotItem is the public representation of a parking lot.
// The owning user is deliberately not part of the wire format.
type ParkingLotItem struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// NewParkingLotItem projects a parking lot entity onto its public shape.
func NewParkingLotItem(lot *entity.ParkingLot) ParkingLotItem {
	return ParkingLotItem{
		ID:      lot.ID,
		Name:    lot.Name,
		Address: lot.Address,
	}
}

// CreateParkingLotReq is the request body for POST /parkinglots.
type CreateParkingLotReq struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// UpdateParkingLotReq is the request body for PUT /parkinglots/:id.
// Full-replace semantics: both fields are required and a missing field is
// rejected before the store is touched.
type UpdateParkingLotReq struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// PatchParkingLotReq is the request body for PATCH /parkinglots/:id.
// Nil fields are left unchanged.
type PatchParkingLotReq struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}
