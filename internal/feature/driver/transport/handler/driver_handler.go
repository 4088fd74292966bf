// Package handler はdriverフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ride_backend/internal/api"
	"ride_backend/internal/feature/driver/domain/entity"
	"ride_backend/internal/feature/driver/transport/http/dto"
	"ride_backend/internal/feature/driver/usecase"
	jwtmw "ride_backend/internal/platform/jwt"
)

// DriverUsecase はドライバーオファー操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはコンシューマー（handler）が定義します。
type DriverUsecase interface {
	Register(ctx context.Context, callerID uuid.UUID, in usecase.RegisterInput) (*entity.Driver, error)
	List(ctx context.Context, f usecase.ListFilter) ([]entity.Driver, error)
	Approve(ctx context.Context, id uuid.UUID) (*entity.Driver, error)
	Reject(ctx context.Context, id uuid.UUID) (*entity.Driver, error)
}

// DriverHandler はドライバーオファーのHTTPリクエストを処理します。
type DriverHandler struct {
	drivers DriverUsecase
}

// NewDriverHandler はDriverHandlerの新しいインスタンスを生成します。
func NewDriverHandler(drivers DriverUsecase) *DriverHandler {
	return &DriverHandler{drivers: drivers}
}

// Register は POST /api/drivers/register を処理します。
// - バリデーションエラー時は400
// - 登録番号の重複時は409
// - 成功時はstatus=pendingの作成済みオファーと共に201
func (h *DriverHandler) Register(c *gin.Context) {
	callerID, ok := jwtmw.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.RegisterDriverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("driver register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	driver, err := h.drivers.Register(c.Request.Context(), callerID, usecase.RegisterInput{
		VehicleType:        req.VehicleType,
		Origin:             req.Origin,
		Destination:        req.Destination,
		Price:              req.Price,
		RegistrationNumber: req.RegistrationNumber,
		LicenseNumber:      req.LicenseNumber,
		LicenseHolderName:  req.LicenseHolderName,
		Availability:       req.Availability,
		HelmetRequired:     req.HelmetRequired,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateRegistration) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "registration number already registered"})
			return
		}
		slog.Error("driver register failed", "error", err, "user_id", callerID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to register driver"})
		return
	}

	slog.Info("driver registered", "driver_id", driver.ID, "user_id", callerID)
	c.JSON(http.StatusCreated, driver)
}

// List は GET /api/drivers/ を処理します。
// フィルタ述語（車種・最低空席数・ルート部分一致）とページネーションは
// クエリパラメータで受け取り、ストレージクエリに押し下げられます。
func (h *DriverHandler) List(c *gin.Context) {
	var q dto.ListDriversQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid query"})
		return
	}

	drivers, err := h.drivers.List(c.Request.Context(), usecase.ListFilter{
		VehicleType: q.VehicleType,
		MinSeats:    q.MinSeats,
		Route:       q.Route,
		Limit:       q.Limit,
		Offset:      q.Offset,
	})
	if err != nil {
		slog.Error("driver list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch drivers"})
		return
	}

	c.JSON(http.StatusOK, drivers)
}

// Approve は PUT /api/drivers/:id/approve を処理します。pendingからのみ遷移できます。
func (h *DriverHandler) Approve(c *gin.Context) {
	h.decide(c, h.drivers.Approve)
}

// Reject は PUT /api/drivers/:id/reject を処理します。pendingからのみ遷移できます。
func (h *DriverHandler) Reject(c *gin.Context) {
	h.decide(c, h.drivers.Reject)
}

// decide は承認・却下エンドポイントの共通処理です。
func (h *DriverHandler) decide(c *gin.Context, fn func(context.Context, uuid.UUID) (*entity.Driver, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid driver id"})
		return
	}

	driver, err := fn(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDriverNotFound):
			c.JSON(http.StatusNotFound, api.MessageResponse{Message: "Driver not found"})
		case errors.Is(err, usecase.ErrInvalidStatusChange):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "driver is no longer pending"})
		default:
			slog.Error("driver status change failed", "error", err, "driver_id", id)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update driver"})
		}
		return
	}

	c.JSON(http.StatusOK, driver)
}
