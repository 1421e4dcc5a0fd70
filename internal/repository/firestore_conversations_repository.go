package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"CareMatch-App/internal/domain/model"
	"CareMatch-App/internal/domain/repository"
)

const conversationsCollection = "conversations"
const messagesSubcollection = "messages"

// FirestoreConversationsRepository Firestoreを使用したチャットプレビューリポジトリ
type FirestoreConversationsRepository struct {
	client *firestore.Client
}

func NewFirestoreConversationsRepository(client *firestore.Client) repository.ConversationsRepository {
	return &FirestoreConversationsRepository{
		client: client,
	}
}

func (r *FirestoreConversationsRepository) ListByFacilityID(ctx context.Context, facilityID string) ([]model.Conversation, error) {
	iter := r.client.Collection(conversationsCollection).
		Where("facility_ids", "array-contains", facilityID).
		OrderBy("last_message_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	conversations := []model.Conversation{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("会話一覧の取得失敗: %w", err)
		}

		var conv model.Conversation
		if err := doc.DataTo(&conv); err != nil {
			return nil, fmt.Errorf("会話データの変換失敗: %w", err)
		}
		conv.ID = doc.Ref.ID
		conversations = append(conversations, conv)
	}

	return conversations, nil
}

func (r *FirestoreConversationsRepository) GetByID(ctx context.Context, id string) (*model.Conversation, error) {
	doc, err := r.client.Collection(conversationsCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("会話の取得失敗: %w", err)
	}

	var conv model.Conversation
	if err := doc.DataTo(&conv); err != nil {
		return nil, fmt.Errorf("会話データの変換失敗: %w", err)
	}
	conv.ID = doc.Ref.ID
	return &conv, nil
}

func (r *FirestoreConversationsRepository) ListMessages(ctx context.Context, conversationID string, limit int) ([]model.Message, error) {
	if limit <= 0 {
		limit = model.DefaultMessagesLimit
	}

	iter := r.client.Collection(conversationsCollection).Doc(conversationID).
		Collection(messagesSubcollection).
		OrderBy("sent_at", firestore.Asc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	messages := []model.Message{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("メッセージ一覧の取得失敗: %w", err)
		}

		var msg model.Message
		if err := doc.DataTo(&msg); err != nil {
			return nil, fmt.Errorf("メッセージデータの変換失敗: %w", err)
		}
		msg.ID = doc.Ref.ID
		messages = append(messages, msg)
	}

	return messages, nil
}

// AppendMessage メッセージを追加し、会話のlast_message/last_message_atを更新する
func (r *FirestoreConversationsRepository) AppendMessage(ctx context.Context, conversationID string, msg *model.Message) error {
	convRef := r.client.Collection(conversationsCollection).Doc(conversationID)

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.SentAt.IsZero() {
		msg.SentAt = time.Now().UTC()
	}

	if _, err := convRef.Collection(messagesSubcollection).Doc(msg.ID).Set(ctx, msg); err != nil {
		return fmt.Errorf("メッセージの保存失敗: %w", err)
	}

	_, err := convRef.Update(ctx, []firestore.Update{
		{Path: "last_message", Value: msg.Body},
		{Path: "last_message_at", Value: msg.SentAt},
	})
	if err != nil {
		return fmt.Errorf("会話の最終メッセージ更新失敗: %w", err)
	}

	return nil
}
