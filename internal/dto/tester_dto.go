package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTesterRequest struct {
	Name  string    `json:"name" validate:"required"`
	Email *string   `json:"email" validate:"omitempty,email"`
	BotId uuid.UUID `json:"bot_id" validate:"required"`
	// SendInvite requests an email invitation carrying the share link.
	// Ignored when the tester has no email address.
	SendInvite bool `json:"send_invite"`
}

type TesterResponse struct {
	Id         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      *string    `json:"email"`
	BotId      uuid.UUID  `json:"bot_id"`
	ShareToken string     `json:"share_token"`
	IsActive   bool       `json:"is_active"`
	IsDeleted  bool       `json:"is_deleted"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

type UpdateTesterRequest struct {
	Id       uuid.UUID
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	IsActive *bool   `json:"is_active"`
}
