package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"parking_backend/internal/api"
	"parking_backend/internal/feature/parkinglot/domain/entity"
	"parking_backend/internal/feature/parkinglot/transport/http/dto"
	"parking_backend/internal/feature/parkinglot/usecase"
)

// SpotUsecase defines the spot operations this handler needs.
type SpotUsecase interface {
	CreateSpot(ctx context.Context, userID, lotID uint, spotType entity.SpotType, pricePerHour decimal.Decimal, occupied bool) (*entity.Spot, error)
	ListSpots(ctx context.Context, lotID uint) ([]entity.Spot, error)
	GetSpot(ctx context.Context, id uint) (*entity.Spot, error)
	PatchSpot(ctx context.Context, id uint, patch usecase.SpotPatch) (*entity.Spot, error)
	DeleteSpot(ctx context.Context, id uint) error
}

// SpotHandler handles HTTP requests for spots within parking lots.
type SpotHandler struct {
	uc SpotUsecase
}

// NewSpotHandler creates a new SpotHandler.
func NewSpotHandler(uc SpotUsecase) *SpotHandler {
	return &SpotHandler{uc: uc}
}

// ListByLot returns the spots of one parking lot.
func (h *SpotHandler) ListByLot(c *gin.Context) {
	lotID, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrLotNotFound.Error()})
		return
	}
	spots, err := h.uc.ListSpots(c.Request.Context(), lotID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	out := make([]dto.SpotItem, 0, len(spots))
	for i := range spots {
		out = append(out, dto.NewSpotItem(&spots[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create adds a spot to a parking lot, stamping the authenticated caller.
func (h *SpotHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing user identity"})
		return
	}
	lotID, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrLotNotFound.Error()})
		return
	}
	var req dto.CreateSpotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("spot create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	price, err := decimal.NewFromString(req.PricePerHour)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.ErrInvalidPrice.Error()})
		return
	}
	spot, err := h.uc.CreateSpot(c.Request.Context(), userID, lotID, entity.SpotType(req.SpotType), price, req.Occupied)
	if err != nil {
		h.renderError(c, err)
		return
	}
	slog.Info("spot created", "id", spot.ID, "parking_lot_id", lotID, "user_id", userID)
	c.JSON(http.StatusCreated, dto.NewSpotItem(spot))
}

// Get returns one spot or 404.
func (h *SpotHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrSpotNotFound.Error()})
		return
	}
	spot, err := h.uc.GetSpot(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSpotItem(spot))
}

// Patch merges the provided subset of fields into the spot. Toggling
// occupancy is a plain write; concurrent toggles are last-writer-wins.
func (h *SpotHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrSpotNotFound.Error()})
		return
	}
	var req dto.PatchSpotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	patch := usecase.SpotPatch{Occupied: req.Occupied}
	if req.SpotType != nil {
		st := entity.SpotType(*req.SpotType)
		patch.SpotType = &st
	}
	if req.PricePerHour != nil {
		price, err := decimal.NewFromString(*req.PricePerHour)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.ErrInvalidPrice.Error()})
			return
		}
		patch.PricePerHour = &price
	}
	spot, err := h.uc.PatchSpot(c.Request.Context(), id, patch)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSpotItem(spot))
}

// Delete removes the spot, answering 204 on success.
func (h *SpotHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrSpotNotFound.Error()})
		return
	}
	if err := h.uc.DeleteSpot(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// renderError maps usecase errors onto HTTP statuses.
func (h *SpotHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrLotNotFound), errors.Is(err, usecase.ErrSpotNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrInvalidSpotType), errors.Is(err, usecase.ErrInvalidPrice):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("spot operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}
