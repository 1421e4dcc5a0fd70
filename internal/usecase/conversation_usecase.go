package usecase

import (
	"context"
	"log"

	"CareMatch-App/internal/domain/model"
	"CareMatch-App/internal/domain/repository"
	"CareMatch-App/internal/domain/service"
)

type ConversationUseCase interface {
	// ListForFacility 施設が参加する会話一覧（最終メッセージの新しい順）
	ListForFacility(ctx context.Context, p model.Principal, facilityID string) ([]model.Conversation, error)

	// Messages 会話のメッセージ一覧。呼び出し元の施設が参加者でなければ閲覧不可
	Messages(ctx context.Context, p model.Principal, conversationID, facilityID string, limit int) ([]model.Message, error)

	// Post メッセージを投稿する。送信施設は呼び出し元の組織に属し、
	// かつ会話の参加者でなければならない
	Post(ctx context.Context, p model.Principal, conversationID string, input *model.PostMessageInput) (*model.Message, error)
}

// conversationUseCaseImpl ConversationUseCaseの実装
type conversationUseCaseImpl struct {
	guard         *service.AccessGuard
	conversations repository.ConversationsRepository
}

// NewConversationUseCase 新しいConversationUseCaseインスタンスを作成
func NewConversationUseCase(guard *service.AccessGuard, conversations repository.ConversationsRepository) ConversationUseCase {
	return &conversationUseCaseImpl{
		guard:         guard,
		conversations: conversations,
	}
}

func (u *conversationUseCaseImpl) ListForFacility(ctx context.Context, p model.Principal, facilityID string) ([]model.Conversation, error) {
	if err := u.guard.CanView(ctx, p, facilityID); err != nil {
		return nil, err
	}
	return u.conversations.ListByFacilityID(ctx, facilityID)
}

func (u *conversationUseCaseImpl) Messages(ctx context.Context, p model.Principal, conversationID, facilityID string, limit int) ([]model.Message, error) {
	if err := u.guard.CanView(ctx, p, facilityID); err != nil {
		return nil, err
	}

	conv, err := u.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasMember(facilityID) {
		return nil, model.ErrFacilityAccessDenied
	}

	return u.conversations.ListMessages(ctx, conversationID, limit)
}

func (u *conversationUseCaseImpl) Post(ctx context.Context, p model.Principal, conversationID string, input *model.PostMessageInput) (*model.Message, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := u.guard.CanView(ctx, p, input.FacilityID); err != nil {
		return nil, err
	}

	conv, err := u.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasMember(input.FacilityID) {
		return nil, model.ErrFacilityAccessDenied
	}

	msg := &model.Message{
		SenderFacilityID: input.FacilityID,
		Body:             input.Body,
	}
	if err := u.conversations.AppendMessage(ctx, conversationID, msg); err != nil {
		return nil, err
	}

	log.Printf("✅ 会話 %s にメッセージを投稿 (施設: %s)", conversationID, input.FacilityID)
	return msg, nil
}
