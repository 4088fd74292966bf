package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ride_backend/internal/feature/auth/domain/entity"
	"ride_backend/internal/feature/auth/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	LoginFunc    func(ctx context.Context, email, password string) (*entity.User, string, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, in)
	}
	return &entity.User{ID: uuid.New(), Name: in.Name, Email: in.Email}, nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, "", usecase.ErrInvalidCredentials
}

func setupRouter(uc AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(uc)
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	return r
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func validRegisterBody() map[string]any {
	return map[string]any{
		"name":     "Test Rider",
		"email":    "rider@example.com",
		"phone":    "0700000001",
		"password": "password123",
		"age":      25,
		"gender":   "female",
	}
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		registerFn func(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
		wantStatus int
	}{
		{
			name:       "successful registration returns 201",
			body:       validRegisterBody(),
			wantStatus: http.StatusCreated,
		},
		{
			name: "missing email returns 400",
			body: func() map[string]any {
				b := validRegisterBody()
				delete(b, "email")
				return b
			}(),
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "short password returns 400",
			body: func() map[string]any {
				b := validRegisterBody()
				b["password"] = "short"
				return b
			}(),
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email returns 409",
			body: validRegisterBody(),
			registerFn: func(ctx context.Context, in usecase.RegisterInput) (*entity.User, error) {
				return nil, usecase.ErrEmailOrPhoneTaken
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&mockAuthUsecase{RegisterFunc: tt.registerFn})
			w := postJSON(router, "/api/auth/register", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	userID := uuid.New()

	t.Run("successful login returns message, userId and token", func(t *testing.T) {
		router := setupRouter(&mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (*entity.User, string, error) {
				return &entity.User{ID: userID, Email: email}, "signed-token", nil
			},
		})

		w := postJSON(router, "/api/auth/login", map[string]any{
			"email":    "rider@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Login successful", resp["message"])
		assert.Equal(t, userID.String(), resp["userId"])
		assert.Equal(t, "signed-token", resp["token"])
	})

	t.Run("bad credentials return 401", func(t *testing.T) {
		router := setupRouter(&mockAuthUsecase{})

		w := postJSON(router, "/api/auth/login", map[string]any{
			"email":    "rider@example.com",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		router := setupRouter(&mockAuthUsecase{})

		w := postJSON(router, "/api/auth/login", map[string]any{"email": "not-an-email"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
