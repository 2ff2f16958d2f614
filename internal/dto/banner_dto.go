package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBannerRequest struct {
	Title    string     `json:"title" validate:"required"`
	Content  string     `json:"content" validate:"required"`
	BotId    *uuid.UUID `json:"bot_id"`
	IsActive *bool      `json:"is_active"`
}

type UpdateBannerRequest struct {
	Id       uuid.UUID
	Title    *string    `json:"title"`
	Content  *string    `json:"content"`
	BotId    *uuid.UUID `json:"bot_id"`
	IsActive *bool      `json:"is_active"`
}

type BannerResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	BotId       *uuid.UUID `json:"bot_id"`
	IsActive    bool       `json:"is_active"`
	CreatedById uuid.UUID  `json:"created_by_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
