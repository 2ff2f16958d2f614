package dto

import (
	"time"

	"github.com/google/uuid"
)

// ChatBootstrapResponse is everything the chat page needs to render after
// resolving a share token: the session (existing or freshly minted), the
// public bot shape, the tester, the history and the tester's note.
type ChatBootstrapResponse struct {
	Session  SessionResponse      `json:"session"`
	Bot      PublicBotResponse    `json:"bot"`
	Tester   TesterResponse       `json:"tester"`
	Messages []MessageResponse    `json:"messages"`
	Note     *SessionNoteResponse `json:"note"`
}

type SendMessageRequest struct {
	SessionId  uuid.UUID `json:"session_id" validate:"required"`
	Content    string    `json:"content" validate:"required,min=1"`
	ShareToken string    `json:"share_token" validate:"required"`
}

type SendMessageResponse struct {
	UserMessageId uuid.UUID `json:"user_message_id"`
	BotMessageId  uuid.UUID `json:"bot_message_id"`
	BotReply      string    `json:"bot_reply"`
}

type EditMessageRequest struct {
	MessageId     uuid.UUID `json:"message_id" validate:"required"`
	EditedContent string    `json:"edited_content" validate:"required"`
	ShareToken    string    `json:"share_token" validate:"required"`
}

type MessageFeedbackRequest struct {
	MessageId    uuid.UUID `json:"message_id" validate:"required"`
	SessionId    uuid.UUID `json:"session_id" validate:"required"`
	FeedbackType string    `json:"feedback_type" validate:"required,oneof=like dislike"`
	Comment      *string   `json:"comment"`
	ShareToken   string    `json:"share_token" validate:"required"`
}

type MessageResponse struct {
	Id            uuid.UUID `json:"id"`
	SessionId     uuid.UUID `json:"session_id"`
	Role          string    `json:"role"`
	Content       string    `json:"content"`
	EditedContent *string   `json:"edited_content"`
	CreatedAt     time.Time `json:"created_at"`
}

type FeedbackResponse struct {
	Id           uuid.UUID `json:"id"`
	MessageId    uuid.UUID `json:"message_id"`
	SessionId    uuid.UUID `json:"session_id"`
	FeedbackType string    `json:"feedback_type"`
	Comment      *string   `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

type HeartbeatRequest struct {
	SessionId  uuid.UUID `json:"session_id" validate:"required"`
	ShareToken string    `json:"share_token" validate:"required"`
}
