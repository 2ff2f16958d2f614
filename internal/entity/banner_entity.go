package entity

import (
	"time"

	"github.com/google/uuid"
)

// Banner is an announcement shown on the chat surface. BotId nil means the
// banner applies to every bot.
type Banner struct {
	Id          uuid.UUID
	Title       string
	Content     string
	BotId       *uuid.UUID
	IsActive    bool
	CreatedById uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
