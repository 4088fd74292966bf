// Package usecase はdriverフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"github.com/google/uuid"

	"ride_backend/internal/feature/driver/domain/entity"
)

const (
	// defaultListLimit は1ページあたりのデフォルト件数です。
	defaultListLimit = 50
	// maxListLimit は1ページあたりの上限件数です。
	maxListLimit = 200
)

// ListFilter はドライバー一覧のサーバーサイドフィルタ条件です。
// 全件をクライアントに送ってクライアント側で絞り込む代わりに、
// 述語をストレージクエリに押し下げます。
type ListFilter struct {
	// VehicleType は完全一致フィルタです。空なら無条件。
	VehicleType string
	// MinSeats は空席数の下限です。0なら無条件。
	MinSeats int
	// Route はorigin/destinationに対する大文字小文字を無視した部分一致です。
	Route string
	// Limit / Offset はページネーションです。
	Limit  int
	Offset int
}

// DriverRepository はドライバーオファーの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type DriverRepository interface {
	// Create は新しいドライバーオファーを永続化します。
	// 登録番号の一意制約違反時はErrDuplicateRegistrationを返します。
	Create(ctx context.Context, d *entity.Driver) error

	// List はフィルタ条件に一致するオファーを所有ユーザーと結合して返します。
	List(ctx context.Context, f ListFilter) ([]entity.Driver, error)

	// FindByID はIDでオファーを取得します。
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error)

	// UpdateStatus はfrom状態のオファーのみをto状態へ条件付き更新します。
	// 対象が存在しない場合はErrDriverNotFound、状態が一致しない場合は
	// ErrInvalidStatusChangeを返します。
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.DriverStatus) error
}

// RegisterInput はドライバー登録の入力フィールドです。
type RegisterInput struct {
	VehicleType        string
	Origin             string
	Destination        string
	Price              float64
	RegistrationNumber string
	LicenseNumber      string
	LicenseHolderName  string
	Availability       int
	HelmetRequired     bool
}

// DriverUsecase provides business logic for driver offer operations.
type DriverUsecase struct {
	drivers DriverRepository
}

// NewDriverUsecase creates a new DriverUsecase with the given repository.
func NewDriverUsecase(drivers DriverRepository) *DriverUsecase {
	return &DriverUsecase{drivers: drivers}
}

// Register は呼び出し元ユーザー所有の新しいオファーをstatus=pendingで作成します。
// availability未指定（0以下）の場合は1にデフォルトします。
func (u *DriverUsecase) Register(ctx context.Context, callerID uuid.UUID, in RegisterInput) (*entity.Driver, error) {
	availability := in.Availability
	if availability <= 0 {
		availability = 1
	}

	d := &entity.Driver{
		UserID:             callerID,
		VehicleType:        in.VehicleType,
		Availability:       availability,
		Origin:             in.Origin,
		Destination:        in.Destination,
		Price:              in.Price,
		RegistrationNumber: in.RegistrationNumber,
		LicenseNumber:      in.LicenseNumber,
		LicenseHolderName:  in.LicenseHolderName,
		Status:             entity.DriverStatusPending,
		HelmetRequired:     in.HelmetRequired,
	}
	if err := u.drivers.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// List はフィルタとページネーションを正規化してオファー一覧を返します。
func (u *DriverUsecase) List(ctx context.Context, f ListFilter) ([]entity.Driver, error) {
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return u.drivers.List(ctx, f)
}

// Approve はpendingのオファーをapprovedへ遷移させます。
func (u *DriverUsecase) Approve(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	return u.decide(ctx, id, entity.DriverStatusApproved)
}

// Reject はpendingのオファーをrejectedへ遷移させます。
func (u *DriverUsecase) Reject(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	return u.decide(ctx, id, entity.DriverStatusRejected)
}

// decide は承認判定の共通処理です。遷移はpendingからのみ許可されます。
func (u *DriverUsecase) decide(ctx context.Context, id uuid.UUID, to entity.DriverStatus) (*entity.Driver, error) {
	if err := u.drivers.UpdateStatus(ctx, id, entity.DriverStatusPending, to); err != nil {
		return nil, err
	}
	return u.drivers.FindByID(ctx, id)
}
