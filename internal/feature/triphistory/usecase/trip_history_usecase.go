// Package usecase はtriphistoryフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"github.com/google/uuid"

	"ride_backend/internal/feature/triphistory/domain/entity"
)

// TripHistoryRepository はトリップ履歴の読み取りを抽象化します。
// 書き込みはライド完了トランザクションの内部で行われるため、ここには現れません。
type TripHistoryRepository interface {
	// ListByDriver は指定ドライバーの履歴を新しい順に返します。
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]entity.TripHistory, error)
}

// TripHistoryUsecase provides read access to the append-only trip log.
type TripHistoryUsecase struct {
	trips TripHistoryRepository
}

// NewTripHistoryUsecase creates a new TripHistoryUsecase with the given repository.
func NewTripHistoryUsecase(trips TripHistoryRepository) *TripHistoryUsecase {
	return &TripHistoryUsecase{trips: trips}
}

// ListByDriver は指定ドライバーの履歴一覧を返します。
func (u *TripHistoryUsecase) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]entity.TripHistory, error) {
	return u.trips.ListByDriver(ctx, driverID)
}
