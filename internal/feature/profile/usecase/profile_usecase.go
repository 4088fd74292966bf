// Package usecase はprofileフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"ride_backend/internal/feature/auth/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user exists for the given ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailOrPhoneTaken is returned when a profile update collides with
	// another user's email or phone number.
	ErrEmailOrPhoneTaken = errors.New("email or phone already registered")
)

// UserRepository はプロフィール操作に必要な永続化層を抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type UserRepository interface {
	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Save はユーザー行全体を保存します。一意制約違反時はErrEmailOrPhoneTakenを返します。
	Save(ctx context.Context, user *entity.User) error
}

// UpdateInput はプロフィール更新の入力フィールドです。
// 元のAPIと同様、4フィールドすべてを無条件に上書きします（部分更新なし）。
type UpdateInput struct {
	Name  string
	Email string
	Phone string
	Age   int
}

// ProfileUsecase provides business logic for reading and updating user profiles.
type ProfileUsecase struct {
	users UserRepository
}

// NewProfileUsecase creates a new ProfileUsecase with the given repository.
func NewProfileUsecase(users UserRepository) *ProfileUsecase {
	return &ProfileUsecase{users: users}
}

// GetProfile は呼び出し元自身のユーザー行を返します。
func (u *ProfileUsecase) GetProfile(ctx context.Context, callerID uuid.UUID) (*entity.User, error) {
	return u.users.FindByID(ctx, callerID)
}

// GetUserByID は任意のユーザー行をIDで返します。
func (u *ProfileUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// UpdateProfile はname/email/phone/ageの4フィールドを上書き保存し、更新後のユーザーを返します。
func (u *ProfileUsecase) UpdateProfile(ctx context.Context, callerID uuid.UUID, in UpdateInput) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Phone = in.Phone
	user.Age = in.Age

	if err := u.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
