// Package adapters はtriphistoryフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ride_backend/internal/feature/triphistory/domain/entity"
	"ride_backend/internal/feature/triphistory/usecase"
)

// tripHistoryGorm はTripHistoryRepositoryインターフェースのGORM実装です。
type tripHistoryGorm struct {
	db *gorm.DB
}

var _ usecase.TripHistoryRepository = (*tripHistoryGorm)(nil)

// NewTripHistoryGorm は指定されたgorm.DB接続でtripHistoryGormの新しいインスタンスを生成します。
func NewTripHistoryGorm(db *gorm.DB) *tripHistoryGorm {
	return &tripHistoryGorm{db: db}
}

// ListByDriver は指定ドライバーの履歴を日付の新しい順に返します。
func (r *tripHistoryGorm) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]entity.TripHistory, error) {
	var trips []entity.TripHistory
	err := r.db.WithContext(ctx).
		Where("driver_id = ?", driverID).
		Order("date DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}
