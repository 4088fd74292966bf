// Package adapters はrideフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ride_backend/internal/feature/ride/domain/entity"
	"ride_backend/internal/feature/ride/usecase"
	tripentity "ride_backend/internal/feature/triphistory/domain/entity"
)

// rideGorm はRideRepositoryインターフェースのGORM実装です。
type rideGorm struct {
	db *gorm.DB
}

var _ usecase.RideRepository = (*rideGorm)(nil)

// NewRideGorm は指定されたgorm.DB接続でrideGormの新しいインスタンスを生成します。
func NewRideGorm(db *gorm.DB) *rideGorm {
	return &rideGorm{db: db}
}

// Create はライドを追加します。
func (r *rideGorm) Create(ctx context.Context, ride *entity.Ride) error {
	return r.db.WithContext(ctx).Create(ride).Error
}

// FindByID はIDでライドを取得します。
func (r *rideGorm) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ride, error) {
	var ride entity.Ride
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ride).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrRideNotFound
		}
		return nil, err
	}
	return &ride, nil
}

// ListByStatus は指定ステータスのライドをページネーション付きで返します。
func (r *rideGorm) ListByStatus(ctx context.Context, status entity.RideStatus, limit, offset int) ([]entity.Ride, error) {
	var rides []entity.Ride
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Limit(limit).Offset(offset).
		Find(&rides).Error
	if err != nil {
		return nil, err
	}
	return rides, nil
}

// Book はpendingの行だけをongoingへ更新する単一の条件付きUPDATEです。
// 読み取り後に書き込むパターンを排除し、並行予約でも高々1件のみ成功します。
// 影響行数0（不存在またはpending以外）はusecase.ErrRideNotAvailableです。
func (r *rideGorm) Book(ctx context.Context, id uuid.UUID) (*entity.Ride, error) {
	res := r.db.WithContext(ctx).Model(&entity.Ride{}).
		Where("id = ? AND status = ?", id, entity.RideStatusPending).
		Update("status", entity.RideStatusOngoing)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrRideNotAvailable
	}
	return r.FindByID(ctx, id)
}

// Complete はライドを事前状態に関わらずcompletedへ設定します。
// 直前がcompletedでなく、かつドライバーが割り当て済みの場合のみ、
// 同一トランザクション内でトリップ履歴を1件追記します（fare=ライド価格、支払いはpending）。
func (r *rideGorm) Complete(ctx context.Context, id uuid.UUID) (*entity.Ride, error) {
	var ride entity.Ride
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&ride).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrRideNotFound
			}
			return err
		}

		// 再完了は履歴を重複させない
		if ride.Status == entity.RideStatusCompleted {
			return nil
		}

		if err := tx.Model(&entity.Ride{}).
			Where("id = ?", id).
			Update("status", entity.RideStatusCompleted).Error; err != nil {
			return err
		}
		ride.Status = entity.RideStatusCompleted

		if ride.DriverID != nil {
			trip := &tripentity.TripHistory{
				DriverID: *ride.DriverID,
				RideID:   ride.ID,
				Fare:     ride.Price,
			}
			if err := tx.Create(trip).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ride, nil
}
