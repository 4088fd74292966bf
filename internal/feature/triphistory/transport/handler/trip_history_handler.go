// Package handler はtriphistoryフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ride_backend/internal/api"
	"ride_backend/internal/feature/triphistory/domain/entity"
)

// TripHistoryUsecase はトリップ履歴読み取りのユースケースを定義します。
type TripHistoryUsecase interface {
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]entity.TripHistory, error)
}

// TripHistoryHandler はトリップ履歴のHTTPリクエストを処理します。
type TripHistoryHandler struct {
	trips TripHistoryUsecase
}

// NewTripHistoryHandler はTripHistoryHandlerの新しいインスタンスを生成します。
func NewTripHistoryHandler(trips TripHistoryUsecase) *TripHistoryHandler {
	return &TripHistoryHandler{trips: trips}
}

// ListByDriver は GET /api/drivers/:id/history を処理します。
func (h *TripHistoryHandler) ListByDriver(c *gin.Context) {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid driver id"})
		return
	}

	trips, err := h.trips.ListByDriver(c.Request.Context(), driverID)
	if err != nil {
		slog.Error("trip history list failed", "error", err, "driver_id", driverID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch trip history"})
		return
	}
	c.JSON(http.StatusOK, trips)
}
