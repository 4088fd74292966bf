// Package handler はratingフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ride_backend/internal/api"
	"ride_backend/internal/feature/rating/domain/entity"
	"ride_backend/internal/feature/rating/transport/http/dto"
	"ride_backend/internal/feature/rating/usecase"
	jwtmw "ride_backend/internal/platform/jwt"
)

// RatingUsecase は評価操作のユースケースを定義します。
type RatingUsecase interface {
	Create(ctx context.Context, rideID, givenBy uuid.UUID, score int, feedback string) (*entity.Rating, error)
	ListByRide(ctx context.Context, rideID uuid.UUID) ([]entity.Rating, error)
}

// RatingHandler は評価のHTTPリクエストを処理します。
type RatingHandler struct {
	ratings RatingUsecase
}

// NewRatingHandler はRatingHandlerの新しいインスタンスを生成します。
func NewRatingHandler(ratings RatingUsecase) *RatingHandler {
	return &RatingHandler{ratings: ratings}
}

// Create は POST /api/ratings/ を処理します。
// - スコア範囲外は400
// - ライド不存在は404
// - 成功時は作成された評価と共に201
func (h *RatingHandler) Create(c *gin.Context) {
	callerID, ok := jwtmw.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.CreateRatingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("rating validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	rideID, err := uuid.Parse(req.RideID)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid ride id"})
		return
	}

	rating, err := h.ratings.Create(c.Request.Context(), rideID, callerID, req.Rating, req.Feedback)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRatingOutOfRange):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrRideNotFound):
			c.JSON(http.StatusNotFound, api.MessageResponse{Message: "Ride not found"})
		default:
			slog.Error("rating create failed", "error", err, "ride_id", rideID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create rating"})
		}
		return
	}

	slog.Info("rating created", "rating_id", rating.ID, "ride_id", rideID)
	c.JSON(http.StatusCreated, rating)
}

// ListByRide は GET /api/ratings/ride/:id を処理します。
func (h *RatingHandler) ListByRide(c *gin.Context) {
	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid ride id"})
		return
	}

	ratings, err := h.ratings.ListByRide(c.Request.Context(), rideID)
	if err != nil {
		slog.Error("rating list failed", "error", err, "ride_id", rideID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch ratings"})
		return
	}
	c.JSON(http.StatusOK, ratings)
}
