// Package usecase はrideフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"github.com/google/uuid"

	"ride_backend/internal/feature/ride/domain/entity"
)

const (
	// defaultListLimit は1ページあたりのデフォルト件数です。
	defaultListLimit = 50
	// maxListLimit は1ページあたりの上限件数です。
	maxListLimit = 200
)

// RideRepository はライドの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type RideRepository interface {
	// Create は新しいライドを永続化します。
	Create(ctx context.Context, ride *entity.Ride) error

	// FindByID はIDでライドを取得します。存在しない場合はErrRideNotFoundを返します。
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ride, error)

	// ListByStatus は指定ステータスのライドをページネーション付きで返します。
	ListByStatus(ctx context.Context, status entity.RideStatus, limit, offset int) ([]entity.Ride, error)

	// Book はpending状態のライドのみをongoingへ遷移させる単一の条件付きUPDATEです。
	// チェックと書き込みの間にレースは存在しません。対象が存在しないか
	// pendingでない場合はErrRideNotAvailableを返します。
	Book(ctx context.Context, id uuid.UUID) (*entity.Ride, error)

	// Complete はライドを事前状態に関わらずcompletedへ設定します。
	// ドライバーが割り当て済みなら、同一トランザクションでトリップ履歴を追記します。
	// 対象が存在しない場合はErrRideNotFoundを返します。
	Complete(ctx context.Context, id uuid.UUID) (*entity.Ride, error)
}

// CreateInput はライド作成の入力フィールドです。
type CreateInput struct {
	DriverID       *uuid.UUID
	VehicleType    string
	SeatsAvailable int
	Price          float64
	Src            string
	Dest           string
}

// RideUsecase provides business logic for the ride lifecycle.
type RideUsecase struct {
	rides RideRepository
}

// NewRideUsecase creates a new RideUsecase with the given repository.
func NewRideUsecase(rides RideRepository) *RideUsecase {
	return &RideUsecase{rides: rides}
}

// Create は呼び出し元をriderとする新しいライドをstatus=pendingで作成します。
// 元のAPIと同様、driverIdが承認済みドライバーを指しているかの検証は行いません。
func (u *RideUsecase) Create(ctx context.Context, riderID uuid.UUID, in CreateInput) (*entity.Ride, error) {
	ride := &entity.Ride{
		DriverID:       in.DriverID,
		RiderID:        riderID,
		VehicleType:    in.VehicleType,
		Status:         entity.RideStatusPending,
		SeatsAvailable: in.SeatsAvailable,
		Price:          in.Price,
		Src:            in.Src,
		Dest:           in.Dest,
	}
	if err := u.rides.Create(ctx, ride); err != nil {
		return nil, err
	}
	return ride, nil
}

// GetByID はIDでライドを返します。
func (u *RideUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entity.Ride, error) {
	return u.rides.FindByID(ctx, id)
}

// ListAvailable は予約可能な（pendingの）ライドのみをページネーション付きで返します。
func (u *RideUsecase) ListAvailable(ctx context.Context, limit, offset int) ([]entity.Ride, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return u.rides.ListByStatus(ctx, entity.RideStatusPending, limit, offset)
}

// Book はpending→ongoingの遷移を原子的に実行し、更新後のライドを返します。
// 同一ライドへの並行予約は高々1件のみ成功します。
func (u *RideUsecase) Book(ctx context.Context, id uuid.UUID) (*entity.Ride, error) {
	return u.rides.Book(ctx, id)
}

// Complete はライドをcompletedへ設定します。事前状態のガードは意図的に行いません。
func (u *RideUsecase) Complete(ctx context.Context, id uuid.UUID) (*entity.Ride, error) {
	return u.rides.Complete(ctx, id)
}
