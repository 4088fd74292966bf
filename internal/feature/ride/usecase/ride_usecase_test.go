package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"ride_backend/internal/feature/ride/domain/entity"
)

// mockRideRepository is a mock implementation of the RideRepository interface.
type mockRideRepository struct {
	CreateFunc       func(ctx context.Context, ride *entity.Ride) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*entity.Ride, error)
	ListByStatusFunc func(ctx context.Context, status entity.RideStatus, limit, offset int) ([]entity.Ride, error)
	BookFunc         func(ctx context.Context, id uuid.UUID) (*entity.Ride, error)
	CompleteFunc     func(ctx context.Context, id uuid.UUID) (*entity.Ride, error)
}

func (m *mockRideRepository) Create(ctx context.Context, ride *entity.Ride) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ride)
	}
	return nil
}

func (m *mockRideRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ride, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &entity.Ride{ID: id}, nil
}

func (m *mockRideRepository) ListByStatus(ctx context.Context, status entity.RideStatus, limit, offset int) ([]entity.Ride, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status, limit, offset)
	}
	return nil, nil
}

func (m *mockRideRepository) Book(ctx context.Context, id uuid.UUID) (*entity.Ride, error) {
	if m.BookFunc != nil {
		return m.BookFunc(ctx, id)
	}
	return &entity.Ride{ID: id, Status: entity.RideStatusOngoing}, nil
}

func (m *mockRideRepository) Complete(ctx context.Context, id uuid.UUID) (*entity.Ride, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, id)
	}
	return &entity.Ride{ID: id, Status: entity.RideStatusCompleted}, nil
}

func TestRideUsecase_Create(t *testing.T) {
	t.Run("new ride starts pending with the caller as rider", func(t *testing.T) {
		var captured *entity.Ride
		repo := &mockRideRepository{
			CreateFunc: func(ctx context.Context, ride *entity.Ride) error {
				captured = ride
				return nil
			},
		}
		riderID := uuid.New()

		uc := NewRideUsecase(repo)
		ride, err := uc.Create(context.Background(), riderID, CreateInput{
			VehicleType:    "Car",
			SeatsAvailable: 2,
			Price:          100,
			Src:            "A",
			Dest:           "B",
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ride.Status != entity.RideStatusPending {
			t.Errorf("expected pending status, got %q", ride.Status)
		}
		if captured.RiderID != riderID {
			t.Errorf("expected rider %s, got %s", riderID, captured.RiderID)
		}
		if captured.DriverID != nil {
			t.Errorf("expected no driver, got %v", captured.DriverID)
		}
	})

	t.Run("repository errors are propagated", func(t *testing.T) {
		wantErr := errors.New("insert failed")
		repo := &mockRideRepository{
			CreateFunc: func(ctx context.Context, ride *entity.Ride) error { return wantErr },
		}

		uc := NewRideUsecase(repo)
		_, err := uc.Create(context.Background(), uuid.New(), CreateInput{})

		if !errors.Is(err, wantErr) {
			t.Errorf("expected %v, got %v", wantErr, err)
		}
	})
}

func TestRideUsecase_ListAvailable(t *testing.T) {
	t.Run("always queries pending rides with clamped pagination", func(t *testing.T) {
		type call struct {
			status        entity.RideStatus
			limit, offset int
		}
		var calls []call
		repo := &mockRideRepository{
			ListByStatusFunc: func(ctx context.Context, status entity.RideStatus, limit, offset int) ([]entity.Ride, error) {
				calls = append(calls, call{status, limit, offset})
				return nil, nil
			},
		}

		uc := NewRideUsecase(repo)
		if _, err := uc.ListAvailable(context.Background(), 0, -3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.ListAvailable(context.Background(), 10000, 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, c := range calls {
			if c.status != entity.RideStatusPending {
				t.Errorf("expected pending status, got %q", c.status)
			}
		}
		if calls[0].limit != defaultListLimit || calls[0].offset != 0 {
			t.Errorf("expected default limit %d and offset 0, got %d/%d", defaultListLimit, calls[0].limit, calls[0].offset)
		}
		if calls[1].limit != maxListLimit || calls[1].offset != 5 {
			t.Errorf("expected clamped limit %d and offset 5, got %d/%d", maxListLimit, calls[1].limit, calls[1].offset)
		}
	})
}

func TestRideUsecase_BookAndComplete(t *testing.T) {
	t.Run("book delegates to the atomic repository transition", func(t *testing.T) {
		id := uuid.New()
		uc := NewRideUsecase(&mockRideRepository{})

		ride, err := uc.Book(context.Background(), id)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ride.Status != entity.RideStatusOngoing {
			t.Errorf("expected ongoing, got %q", ride.Status)
		}
	})

	t.Run("book surfaces unavailable rides", func(t *testing.T) {
		repo := &mockRideRepository{
			BookFunc: func(ctx context.Context, id uuid.UUID) (*entity.Ride, error) {
				return nil, ErrRideNotAvailable
			},
		}

		uc := NewRideUsecase(repo)
		_, err := uc.Book(context.Background(), uuid.New())

		if !errors.Is(err, ErrRideNotAvailable) {
			t.Errorf("expected ErrRideNotAvailable, got %v", err)
		}
	})

	t.Run("complete returns the completed ride", func(t *testing.T) {
		uc := NewRideUsecase(&mockRideRepository{})

		ride, err := uc.Complete(context.Background(), uuid.New())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ride.Status != entity.RideStatusCompleted {
			t.Errorf("expected completed, got %q", ride.Status)
		}
	})
}
