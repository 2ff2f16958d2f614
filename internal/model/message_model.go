package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Message struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Role          string    `gorm:"type:varchar(8);not null"`
	Content       string    `gorm:"type:text;not null"`
	EditedContent *string   `gorm:"type:text"`
	Meta          datatypes.JSON
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "messages"
}

type MessageFeedback struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MessageId uuid.UUID `gorm:"type:uuid;not null;index"`
	// Denormalized for per-session feedback listings.
	SessionId    uuid.UUID `gorm:"type:uuid;not null;index"`
	FeedbackType string    `gorm:"type:varchar(8);not null"`
	Comment      *string   `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (MessageFeedback) TableName() string {
	return "message_feedback"
}
