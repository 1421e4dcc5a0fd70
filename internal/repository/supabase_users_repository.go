package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"CareMatch-App/internal/database"
	"CareMatch-App/internal/domain/model"
	"CareMatch-App/internal/domain/repository"
)

type SupabaseUsersRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseUsersRepository(client *database.SupabaseClient) repository.UsersRepository {
	return &SupabaseUsersRepository{
		client: client,
	}
}

func (r *SupabaseUsersRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var users []model.User
	data, count, err := r.client.GetClient().From("users").Select("id,role,org_id", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("ユーザーデータの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &users); err != nil {
		return nil, fmt.Errorf("ユーザーデータのJSONアンマーシャル失敗: %w", err)
	}

	if len(users) == 0 {
		return nil, model.ErrUnauthenticated
	}

	return &users[0], nil
}
