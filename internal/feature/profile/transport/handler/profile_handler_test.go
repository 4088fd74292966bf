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
	"github.com/stretchr/testify/require"

	"ride_backend/internal/feature/auth/domain/entity"
	"ride_backend/internal/feature/profile/usecase"
	jwtmw "ride_backend/internal/platform/jwt"
)

// mockProfileUsecase is a mock implementation of the ProfileUsecase interface.
type mockProfileUsecase struct {
	GetProfileFunc    func(ctx context.Context, callerID uuid.UUID) (*entity.User, error)
	GetUserByIDFunc   func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateProfileFunc func(ctx context.Context, callerID uuid.UUID, in usecase.UpdateInput) (*entity.User, error)
}

func (m *mockProfileUsecase) GetProfile(ctx context.Context, callerID uuid.UUID) (*entity.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, callerID)
	}
	return &entity.User{ID: callerID, Name: "Alice", Email: "alice@example.com"}, nil
}

func (m *mockProfileUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.GetUserByIDFunc != nil {
		return m.GetUserByIDFunc(ctx, id)
	}
	return &entity.User{ID: id}, nil
}

func (m *mockProfileUsecase) UpdateProfile(ctx context.Context, callerID uuid.UUID, in usecase.UpdateInput) (*entity.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, callerID, in)
	}
	return &entity.User{ID: callerID, Name: in.Name, Email: in.Email, Phone: in.Phone, Age: in.Age}, nil
}

// setupRouter wires the handler behind a stub auth middleware that injects
// the given caller ID.
func setupRouter(uc ProfileUsecase, callerID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewProfileHandler(uc)
	authed := r.Group("/", func(c *gin.Context) { c.Set(jwtmw.ContextUserID, callerID) })
	authed.GET("/api/users/profile", h.GetProfile)
	authed.PUT("/api/users/profile", h.UpdateProfile)
	authed.GET("/api/users/user/:id", h.GetUserByID)
	return r
}

func TestProfileHandler_GetProfile(t *testing.T) {
	t.Run("returns the caller's own row", func(t *testing.T) {
		callerID := uuid.New()
		router := setupRouter(&mockProfileUsecase{}, callerID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, callerID.String(), resp["id"])
		assert.Equal(t, "Alice", resp["name"])
	})

	t.Run("unknown caller returns 404", func(t *testing.T) {
		router := setupRouter(&mockProfileUsecase{
			GetProfileFunc: func(ctx context.Context, callerID uuid.UUID) (*entity.User, error) {
				return nil, usecase.ErrUserNotFound
			},
		}, uuid.New())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "User not found", resp["message"])
	})
}

func TestProfileHandler_GetUserByID(t *testing.T) {
	t.Run("malformed id returns 400", func(t *testing.T) {
		router := setupRouter(&mockProfileUsecase{}, uuid.New())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users/user/not-a-uuid", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown user returns 404", func(t *testing.T) {
		router := setupRouter(&mockProfileUsecase{
			GetUserByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				return nil, usecase.ErrUserNotFound
			},
		}, uuid.New())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users/user/"+uuid.NewString(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	callerID := uuid.New()

	body := func(t *testing.T) *bytes.Reader {
		t.Helper()
		b, err := json.Marshal(map[string]any{
			"name":  "New Name",
			"email": "new@example.com",
			"phone": "0711",
			"age":   31,
		})
		require.NoError(t, err)
		return bytes.NewReader(b)
	}

	t.Run("update returns the message and the updated user", func(t *testing.T) {
		router := setupRouter(&mockProfileUsecase{}, callerID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/users/profile", body(t))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Profile updated successfully", resp["message"])
		user, ok := resp["user"].(map[string]any)
		require.True(t, ok, "expected nested user object")
		assert.Equal(t, "New Name", user["name"])
		assert.Equal(t, "new@example.com", user["email"])
	})

	t.Run("missing required field returns 400", func(t *testing.T) {
		router := setupRouter(&mockProfileUsecase{}, callerID)

		b, _ := json.Marshal(map[string]any{"name": "Only Name"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/users/profile", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("colliding email returns 409", func(t *testing.T) {
		router := setupRouter(&mockProfileUsecase{
			UpdateProfileFunc: func(ctx context.Context, callerID uuid.UUID, in usecase.UpdateInput) (*entity.User, error) {
				return nil, usecase.ErrEmailOrPhoneTaken
			},
		}, callerID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/users/profile", body(t))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
