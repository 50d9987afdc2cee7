// Package handler provides the HTTP handlers for the parkinglot feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"parking_backend/internal/api"
	authusecase "parking_backend/internal/feature/auth/usecase"
	"parking_backend/internal/feature/parkinglot/domain/entity"
	"parking_backend/internal/feature/parkinglot/transport/http/dto"
	"parking_backend/internal/feature/parkinglot/usecase"
	jwtmw "parking_backend/internal/platform/jwt"
)

// ParkingLotUsecase defines the lot operations this handler needs.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type ParkingLotUsecase interface {
	CreateLot(ctx context.Context, userID uint, name, address string) (*entity.ParkingLot, error)
	ListLots(ctx context.Context) ([]entity.ParkingLot, error)
	GetLot(ctx context.Context, id uint) (*entity.ParkingLot, error)
	UpdateLot(ctx context.Context, id uint, name, address string) (*entity.ParkingLot, error)
	PatchLot(ctx context.Context, id uint, patch usecase.LotPatch) (*entity.ParkingLot, error)
	DeleteLot(ctx context.Context, id uint) error
}

// ParkingLotHandler handles HTTP requests for the parking lot resource.
type ParkingLotHandler struct {
	uc ParkingLotUsecase
}

// NewParkingLotHandler creates a new ParkingLotHandler.
func NewParkingLotHandler(uc ParkingLotUsecase) *ParkingLotHandler {
	return &ParkingLotHandler{uc: uc}
}

// callerID reads the authenticated user's ID stored by the JWT middleware.
func callerID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// List returns every parking lot serialized to the public shape.
func (h *ParkingLotHandler) List(c *gin.Context) {
	lots, err := h.uc.ListLots(c.Request.Context())
	if err != nil {
		slog.Error("listing parking lots failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	out := make([]dto.ParkingLotItem, 0, len(lots))
	for i := range lots {
		out = append(out, dto.NewParkingLotItem(&lots[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns one parking lot or 404.
func (h *ParkingLotHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrLotNotFound.Error()})
		return
	}
	lot, err := h.uc.GetLot(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewParkingLotItem(lot))
}

// Create inserts a parking lot owned by the authenticated caller.
// The superuser rule is enforced by the usecase; non-superusers get 403.
func (h *ParkingLotHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing user identity"})
		return
	}
	var req dto.CreateParkingLotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("parking lot create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	lot, err := h.uc.CreateLot(c.Request.Context(), userID, req.Name, req.Address)
	if err != nil {
		h.renderError(c, err)
		return
	}
	slog.Info("parking lot created", "id", lot.ID, "user_id", userID)
	c.JSON(http.StatusCreated, dto.NewParkingLotItem(lot))
}

// Update replaces name and address (full-replace semantics; both fields
// required).
func (h *ParkingLotHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrLotNotFound.Error()})
		return
	}
	var req dto.UpdateParkingLotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("parking lot update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	lot, err := h.uc.UpdateLot(c.Request.Context(), id, req.Name, req.Address)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewParkingLotItem(lot))
}

// Patch merges the provided subset of fields into the lot.
func (h *ParkingLotHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrLotNotFound.Error()})
		return
	}
	var req dto.PatchParkingLotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	lot, err := h.uc.PatchLot(c.Request.Context(), id, usecase.LotPatch{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewParkingLotItem(lot))
}

// Delete removes the lot and its spots, answering 204 on success.
func (h *ParkingLotHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrLotNotFound.Error()})
		return
	}
	if err := h.uc.DeleteLot(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// renderError maps usecase errors onto HTTP statuses.
func (h *ParkingLotHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotSuperuser):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrLotNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, authusecase.ErrUserNotFound):
		// Token refers to a user that no longer exists.
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unknown user"})
	default:
		slog.Error("parking lot operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}
