// Package handler はprofileフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ride_backend/internal/api"
	"ride_backend/internal/feature/auth/domain/entity"
	"ride_backend/internal/feature/profile/transport/http/dto"
	"ride_backend/internal/feature/profile/usecase"
	jwtmw "ride_backend/internal/platform/jwt"
)

// ProfileUsecase はプロフィール操作のユースケースを定義します。
type ProfileUsecase interface {
	GetProfile(ctx context.Context, callerID uuid.UUID) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, callerID uuid.UUID, in usecase.UpdateInput) (*entity.User, error)
}

// ProfileHandler はユーザープロフィールのHTTPリクエストを処理します。
type ProfileHandler struct {
	profile ProfileUsecase
}

// NewProfileHandler はProfileHandlerの新しいインスタンスを生成します。
func NewProfileHandler(profile ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// GetProfile は GET /api/users/profile を処理し、呼び出し元のユーザー行を返します。
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	callerID, ok := jwtmw.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	user, err := h.profile.GetProfile(c.Request.Context(), callerID)
	if err != nil {
		h.renderUserError(c, err, "failed to fetch profile")
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserByID は GET /api/users/user/:id を処理します。
func (h *ProfileHandler) GetUserByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.profile.GetUserByID(c.Request.Context(), id)
	if err != nil {
		h.renderUserError(c, err, "failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile は PUT /api/users/profile を処理します。
// 4フィールドすべてを上書きし、更新後のユーザーを返します。
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	callerID, ok := jwtmw.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("profile update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, err := h.profile.UpdateProfile(c.Request.Context(), callerID, usecase.UpdateInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Age:   req.Age,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailOrPhoneTaken) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "email or phone already registered"})
			return
		}
		h.renderUserError(c, err, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": user})
}

// renderUserError は共通のエラー変換です。not-foundは404、それ以外はログに残して500を返します。
func (h *ProfileHandler) renderUserError(c *gin.Context, err error, logMsg string) {
	if errors.Is(err, usecase.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: "User not found"})
		return
	}
	slog.Error(logMsg, "error", err, "remote_addr", c.ClientIP())
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: logMsg})
}
