// Package adapters はdriverフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ride_backend/internal/feature/driver/domain/entity"
	"ride_backend/internal/feature/driver/usecase"
)

// driverGorm はDriverRepositoryインターフェースのGORM実装です。
type driverGorm struct {
	db *gorm.DB
}

var _ usecase.DriverRepository = (*driverGorm)(nil)

// NewDriverGorm は指定されたgorm.DB接続でdriverGormの新しいインスタンスを生成します。
func NewDriverGorm(db *gorm.DB) *driverGorm {
	return &driverGorm{db: db}
}

// Create はドライバーオファーを追加します。
// 登録番号の一意制約違反時はusecase.ErrDuplicateRegistrationを返します。
func (r *driverGorm) Create(ctx context.Context, d *entity.Driver) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrDuplicateRegistration
		}
		return err
	}
	return nil
}

// List はフィルタ述語をSQLに押し下げ、所有ユーザーをプリロードして返します。
// ルート一致はorigin/destinationへの大文字小文字を無視した部分一致です。
func (r *driverGorm) List(ctx context.Context, f usecase.ListFilter) ([]entity.Driver, error) {
	q := r.db.WithContext(ctx).Model(&entity.Driver{}).Preload("User")

	if f.VehicleType != "" {
		q = q.Where("vehicle_type = ?", f.VehicleType)
	}
	if f.MinSeats > 0 {
		q = q.Where("availability >= ?", f.MinSeats)
	}
	if f.Route != "" {
		pattern := "%" + strings.ToLower(f.Route) + "%"
		q = q.Where("LOWER(origin) LIKE ? OR LOWER(destination) LIKE ?", pattern, pattern)
	}

	var drivers []entity.Driver
	if err := q.Limit(f.Limit).Offset(f.Offset).Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

// FindByID はIDでオファーを取得します。
func (r *driverGorm) FindByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	var d entity.Driver
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrDriverNotFound
		}
		return nil, err
	}
	return &d, nil
}

// UpdateStatus はfrom状態の行だけをtoへ更新する条件付きUPDATEです。
// 影響行数0の場合、存在しないのか状態不一致なのかを区別してエラーを返します。
func (r *driverGorm) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.DriverStatus) error {
	res := r.db.WithContext(ctx).Model(&entity.Driver{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&entity.Driver{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return usecase.ErrDriverNotFound
		}
		return usecase.ErrInvalidStatusChange
	}
	return nil
}
