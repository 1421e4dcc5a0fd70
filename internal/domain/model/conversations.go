package model

import (
	"time"
	"unicode/utf8"
)

const (
	// MaxMessageLength チャットメッセージの最大文字数
	MaxMessageLength = 2000
	// DefaultMessagesLimit メッセージ取得のデフォルト件数
	DefaultMessagesLimit = 50
)

// Conversation Firestoreのconversationsコレクションのドキュメント。
// 2施設間のチャットプレビューを表す
type Conversation struct {
	ID            string    `json:"id" firestore:"id"`
	FacilityIDs   []string  `json:"facility_ids" firestore:"facility_ids"`
	LastMessage   string    `json:"last_message" firestore:"last_message"`
	LastMessageAt time.Time `json:"last_message_at" firestore:"last_message_at"`
	CreatedAt     time.Time `json:"created_at" firestore:"created_at"`
}

// HasMember 指定施設がこの会話の参加者かチェック
func (c *Conversation) HasMember(facilityID string) bool {
	for _, id := range c.FacilityIDs {
		if id == facilityID {
			return true
		}
	}
	return false
}

// Message 会話のmessagesサブコレクションのドキュメント
type Message struct {
	ID               string    `json:"id" firestore:"id"`
	SenderFacilityID string    `json:"sender_facility_id" firestore:"sender_facility_id"`
	Body             string    `json:"body" firestore:"body"`
	SentAt           time.Time `json:"sent_at" firestore:"sent_at"`
}

// PostMessageInput POST /api/conversations/:id/messages のリクエストボディ
type PostMessageInput struct {
	FacilityID string `json:"facilityId"`
	Body       string `json:"body"`
}

// Validate 入力検証
func (in *PostMessageInput) Validate() error {
	if in.FacilityID == "" {
		return NewValidationError("facilityId", "facilityId is required")
	}
	if in.Body == "" {
		return NewValidationError("body", "body is required")
	}
	if utf8.RuneCountInString(in.Body) > MaxMessageLength {
		return NewValidationError("body", "must be 2000 characters or less")
	}
	return nil
}
