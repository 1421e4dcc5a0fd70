package repository

import (
	"context"

	"CareMatch-App/internal/domain/model"
)

// ConversationsRepository チャットプレビューの永続化（Firestore）
type ConversationsRepository interface {
	// ListByFacilityID 施設が参加する会話を最終メッセージの新しい順で取得
	ListByFacilityID(ctx context.Context, facilityID string) ([]model.Conversation, error)
	// GetByID 会話を取得。存在しない場合はmodel.ErrNotFound
	GetByID(ctx context.Context, id string) (*model.Conversation, error)
	// ListMessages 会話のメッセージを送信時刻の昇順で取得
	ListMessages(ctx context.Context, conversationID string, limit int) ([]model.Message, error)
	// AppendMessage メッセージを追加し、会話のlast_messageを更新する
	AppendMessage(ctx context.Context, conversationID string, msg *model.Message) error
}
