package repository

import (
	"context"

	"CareMatch-App/internal/domain/model"
)

// UsersRepository usersテーブルへの読み取り専用アクセス
type UsersRepository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}
