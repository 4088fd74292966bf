package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"ride_backend/internal/feature/rating/domain/entity"
)

// mockRatingRepository is a mock implementation of the RatingRepository interface.
type mockRatingRepository struct {
	CreateFunc     func(ctx context.Context, rating *entity.Rating) error
	ListByRideFunc func(ctx context.Context, rideID uuid.UUID) ([]entity.Rating, error)
}

func (m *mockRatingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rating)
	}
	return nil
}

func (m *mockRatingRepository) ListByRide(ctx context.Context, rideID uuid.UUID) ([]entity.Rating, error) {
	if m.ListByRideFunc != nil {
		return m.ListByRideFunc(ctx, rideID)
	}
	return nil, nil
}

// mockRideChecker is a mock implementation of the RideChecker interface.
type mockRideChecker struct {
	RideExistsFunc func(ctx context.Context, rideID uuid.UUID) (bool, error)
}

func (m *mockRideChecker) RideExists(ctx context.Context, rideID uuid.UUID) (bool, error) {
	if m.RideExistsFunc != nil {
		return m.RideExistsFunc(ctx, rideID)
	}
	return true, nil
}

func TestRatingUsecase_Create(t *testing.T) {
	t.Run("valid rating for an existing ride is stored", func(t *testing.T) {
		var captured *entity.Rating
		repo := &mockRatingRepository{
			CreateFunc: func(ctx context.Context, rating *entity.Rating) error {
				captured = rating
				return nil
			},
		}
		rideID, raterID := uuid.New(), uuid.New()

		uc := NewRatingUsecase(repo, &mockRideChecker{})
		rating, err := uc.Create(context.Background(), rideID, raterID, 5, "great trip")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured == nil {
			t.Fatal("expected Create to be called")
		}
		if rating.RideID != rideID || rating.GivenBy != raterID {
			t.Errorf("unexpected rating: %+v", rating)
		}
		if rating.Rating != 5 || rating.Feedback != "great trip" {
			t.Errorf("unexpected score or feedback: %+v", rating)
		}
	})

	t.Run("score outside [1,5] is rejected before any lookup", func(t *testing.T) {
		checked := false
		checker := &mockRideChecker{
			RideExistsFunc: func(ctx context.Context, rideID uuid.UUID) (bool, error) {
				checked = true
				return true, nil
			},
		}

		uc := NewRatingUsecase(&mockRatingRepository{}, checker)
		for _, score := range []int{0, 6, -1} {
			_, err := uc.Create(context.Background(), uuid.New(), uuid.New(), score, "")
			if !errors.Is(err, ErrRatingOutOfRange) {
				t.Errorf("score %d: expected ErrRatingOutOfRange, got %v", score, err)
			}
		}
		if checked {
			t.Error("ride existence should not be checked for an invalid score")
		}
	})

	t.Run("boundary scores 1 and 5 are accepted", func(t *testing.T) {
		uc := NewRatingUsecase(&mockRatingRepository{}, &mockRideChecker{})

		for _, score := range []int{entity.MinRating, entity.MaxRating} {
			if _, err := uc.Create(context.Background(), uuid.New(), uuid.New(), score, ""); err != nil {
				t.Errorf("score %d: unexpected error: %v", score, err)
			}
		}
	})

	t.Run("missing ride is rejected", func(t *testing.T) {
		checker := &mockRideChecker{
			RideExistsFunc: func(ctx context.Context, rideID uuid.UUID) (bool, error) {
				return false, nil
			},
		}

		uc := NewRatingUsecase(&mockRatingRepository{}, checker)
		_, err := uc.Create(context.Background(), uuid.New(), uuid.New(), 3, "")

		if !errors.Is(err, ErrRideNotFound) {
			t.Errorf("expected ErrRideNotFound, got %v", err)
		}
	})
}
