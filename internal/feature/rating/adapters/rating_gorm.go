// Package adapters はratingフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ride_backend/internal/feature/rating/domain/entity"
	"ride_backend/internal/feature/rating/usecase"
	rideentity "ride_backend/internal/feature/ride/domain/entity"
)

// ratingGorm はRatingRepositoryとRideCheckerのGORM実装です。
type ratingGorm struct {
	db *gorm.DB
}

var (
	_ usecase.RatingRepository = (*ratingGorm)(nil)
	_ usecase.RideChecker      = (*ratingGorm)(nil)
)

// NewRatingGorm は指定されたgorm.DB接続でratingGormの新しいインスタンスを生成します。
func NewRatingGorm(db *gorm.DB) *ratingGorm {
	return &ratingGorm{db: db}
}

// Create は評価を追加します。
func (r *ratingGorm) Create(ctx context.Context, rating *entity.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

// ListByRide は指定ライドの評価一覧を返します。
func (r *ratingGorm) ListByRide(ctx context.Context, rideID uuid.UUID) ([]entity.Rating, error) {
	var ratings []entity.Rating
	if err := r.db.WithContext(ctx).Where("ride_id = ?", rideID).Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// RideExists はライド行の存在を確認します。
func (r *ratingGorm) RideExists(ctx context.Context, rideID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&rideentity.Ride{}).Where("id = ?", rideID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
