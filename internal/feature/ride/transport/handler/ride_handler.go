// Package handler はrideフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ride_backend/internal/api"
	"ride_backend/internal/feature/ride/domain/entity"
	"ride_backend/internal/feature/ride/transport/http/dto"
	"ride_backend/internal/feature/ride/usecase"
	jwtmw "ride_backend/internal/platform/jwt"
)

// RideUsecase はライドライフサイクル操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはコンシューマー（handler）が定義します。
type RideUsecase interface {
	Create(ctx context.Context, riderID uuid.UUID, in usecase.CreateInput) (*entity.Ride, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Ride, error)
	ListAvailable(ctx context.Context, limit, offset int) ([]entity.Ride, error)
	Book(ctx context.Context, id uuid.UUID) (*entity.Ride, error)
	Complete(ctx context.Context, id uuid.UUID) (*entity.Ride, error)
}

// RideHandler はライドのHTTPリクエストを処理します。
type RideHandler struct {
	rides RideUsecase
}

// NewRideHandler はRideHandlerの新しいインスタンスを生成します。
func NewRideHandler(rides RideUsecase) *RideHandler {
	return &RideHandler{rides: rides}
}

// Create は POST /api/rides/ を処理します。
// riderIdは認証済み呼び出し元から取り、status=pendingで作成します。
func (h *RideHandler) Create(c *gin.Context) {
	riderID, ok := jwtmw.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.CreateRideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("ride create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	var driverID *uuid.UUID
	if req.DriverID != nil {
		id, err := uuid.Parse(*req.DriverID)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid driver id"})
			return
		}
		driverID = &id
	}

	ride, err := h.rides.Create(c.Request.Context(), riderID, usecase.CreateInput{
		DriverID:       driverID,
		VehicleType:    req.VehicleType,
		SeatsAvailable: req.SeatsAvailable,
		Price:          req.Price,
		Src:            req.Src,
		Dest:           req.Dest,
	})
	if err != nil {
		slog.Error("ride create failed", "error", err, "rider_id", riderID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create ride"})
		return
	}

	slog.Info("ride created", "ride_id", ride.ID, "rider_id", riderID)
	c.JSON(http.StatusCreated, ride)
}

// ListAvailable は GET /api/rides/available を処理し、pendingのライドのみを返します。
func (h *RideHandler) ListAvailable(c *gin.Context) {
	var q dto.ListRidesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid query"})
		return
	}

	rides, err := h.rides.ListAvailable(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		slog.Error("ride list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch rides"})
		return
	}
	c.JSON(http.StatusOK, rides)
}

// GetByID は GET /api/rides/:id を処理します。
func (h *RideHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid ride id"})
		return
	}

	ride, err := h.rides.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrRideNotFound) {
			c.JSON(http.StatusNotFound, api.MessageResponse{Message: "Ride not found"})
			return
		}
		slog.Error("ride fetch failed", "error", err, "ride_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch ride"})
		return
	}
	c.JSON(http.StatusOK, ride)
}

// Book は PUT /api/rides/:id/book を処理します。
// pending→ongoingの遷移は単一の条件付きUPDATEで行われ、並行予約でも
// 高々1件のみ成功します。不存在とpending以外は区別せず404で返します。
func (h *RideHandler) Book(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid ride id"})
		return
	}

	ride, err := h.rides.Book(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrRideNotAvailable) {
			c.JSON(http.StatusNotFound, api.MessageResponse{Message: "Ride not available"})
			return
		}
		slog.Error("ride book failed", "error", err, "ride_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to book ride"})
		return
	}

	slog.Info("ride booked", "ride_id", ride.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Ride booked successfully!", "ride": ride})
}

// Complete は PUT /api/rides/:id/complete を処理します。
// 事前状態に関わらずcompletedへ設定します（存在チェックのみ）。
func (h *RideHandler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid ride id"})
		return
	}

	ride, err := h.rides.Complete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrRideNotFound) {
			c.JSON(http.StatusNotFound, api.MessageResponse{Message: "Ride not found"})
			return
		}
		slog.Error("ride complete failed", "error", err, "ride_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to complete ride"})
		return
	}

	slog.Info("ride completed", "ride_id", ride.ID)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Ride completed successfully!"})
}
