package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClientTester is a person invited to exercise a bot through a share link.
// The share token is the only credential the public chat surface knows about.
type ClientTester struct {
	Id         uuid.UUID
	Name       string
	Email      *string
	BotId      uuid.UUID
	ShareToken string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}
