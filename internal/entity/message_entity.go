package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	MessageRoleUser MessageRole = "user"
	MessageRoleBot  MessageRole = "bot"
)

type FeedbackType string

const (
	FeedbackTypeLike    FeedbackType = "like"
	FeedbackTypeDislike FeedbackType = "dislike"
)

// Message is one turn of a test conversation. Messages are append-only;
// EditedContent is a tester-authored "ideal answer" kept alongside the
// original, never replacing it.
type Message struct {
	Id            uuid.UUID
	SessionId     uuid.UUID
	Role          MessageRole
	Content       string
	EditedContent *string
	Meta          *RelayMeta
	CreatedAt     time.Time
}

// RelayMeta records diagnostics about the upstream relay call that produced
// a bot message. Absent on user messages.
type RelayMeta struct {
	UpstreamStatus int    `json:"upstreamStatus,omitempty"`
	LatencyMs      int64  `json:"latencyMs,omitempty"`
	Error          string `json:"error,omitempty"`
}

type MessageFeedback struct {
	Id        uuid.UUID
	MessageId uuid.UUID
	SessionId uuid.UUID
	Type      FeedbackType
	Comment   *string
	CreatedAt time.Time
}
