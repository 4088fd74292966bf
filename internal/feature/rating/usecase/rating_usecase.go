// Package usecase はratingフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"ride_backend/internal/feature/rating/domain/entity"
)

var (
	// ErrRideNotFound is returned when rating a ride that does not exist.
	ErrRideNotFound = errors.New("ride not found")

	// ErrRatingOutOfRange is returned when the score falls outside [1,5].
	ErrRatingOutOfRange = fmt.Errorf("rating must be between %d and %d", entity.MinRating, entity.MaxRating)
)

// RatingRepository は評価の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type RatingRepository interface {
	// Create は評価を永続化します。
	Create(ctx context.Context, rating *entity.Rating) error

	// ListByRide は指定ライドの評価一覧を返します。
	ListByRide(ctx context.Context, rideID uuid.UUID) ([]entity.Rating, error)
}

// RideChecker は評価対象のライドが存在するかを確認します。
type RideChecker interface {
	RideExists(ctx context.Context, rideID uuid.UUID) (bool, error)
}

// RatingUsecase provides business logic for post-ride feedback.
type RatingUsecase struct {
	ratings RatingRepository
	rides   RideChecker
}

// NewRatingUsecase creates a new RatingUsecase with the given dependencies.
func NewRatingUsecase(ratings RatingRepository, rides RideChecker) *RatingUsecase {
	return &RatingUsecase{ratings: ratings, rides: rides}
}

// Create は既存ライドへの評価を記録します。
// スコアが[1,5]の範囲外ならErrRatingOutOfRange、ライド不存在ならErrRideNotFoundを返します。
func (u *RatingUsecase) Create(ctx context.Context, rideID, givenBy uuid.UUID, score int, feedback string) (*entity.Rating, error) {
	if score < entity.MinRating || score > entity.MaxRating {
		return nil, ErrRatingOutOfRange
	}

	exists, err := u.rides.RideExists(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRideNotFound
	}

	rating := &entity.Rating{
		RideID:   rideID,
		GivenBy:  givenBy,
		Rating:   score,
		Feedback: feedback,
	}
	if err := u.ratings.Create(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

// ListByRide は指定ライドの評価一覧を返します。
func (u *RatingUsecase) ListByRide(ctx context.Context, rideID uuid.UUID) ([]entity.Rating, error) {
	return u.ratings.ListByRide(ctx, rideID)
}
