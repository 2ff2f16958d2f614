package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBotRequest struct {
	Name         string  `json:"name" validate:"required"`
	ClientName   string  `json:"client_name" validate:"required"`
	BrandLogoUrl *string `json:"brand_logo_url"`
	RelayApiUrl  string  `json:"relay_api_url" validate:"required,url"`
	RelayApiKey  *string `json:"relay_api_key"`
	FirstMessage *string `json:"first_message"`
	Status       string  `json:"status" validate:"omitempty,oneof=in_review testing live not_live cancelled"`
}

type UpdateBotRequest struct {
	Id           uuid.UUID
	Name         *string `json:"name"`
	ClientName   *string `json:"client_name"`
	BrandLogoUrl *string `json:"brand_logo_url"`
	RelayApiUrl  *string `json:"relay_api_url" validate:"omitempty,url"`
	RelayApiKey  *string `json:"relay_api_key"`
	FirstMessage *string `json:"first_message"`
	Status       *string `json:"status" validate:"omitempty,oneof=in_review testing live not_live cancelled"`
}

type BotResponse struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	ClientName   string     `json:"client_name"`
	BrandLogoUrl *string    `json:"brand_logo_url"`
	RelayApiUrl  string     `json:"relay_api_url"`
	RelayApiKey  *string    `json:"relay_api_key"`
	FirstMessage *string    `json:"first_message"`
	Status       string     `json:"status"`
	CreatedById  uuid.UUID  `json:"created_by_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// PublicBotResponse is the bot shape exposed on the share-token chat
// surface. Relay credentials never leave the server.
type PublicBotResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ClientName   string    `json:"client_name"`
	BrandLogoUrl *string   `json:"brand_logo_url"`
	FirstMessage *string   `json:"first_message"`
	Status       string    `json:"status"`
}

type BotAnalyticsResponse struct {
	BotId             uuid.UUID `json:"bot_id"`
	TotalSessions     int       `json:"total_sessions"`
	LiveSessions      int       `json:"live_sessions"`
	CompletedSessions int       `json:"completed_sessions"`
	ReviewedSessions  int       `json:"reviewed_sessions"`
	AverageRating     float64   `json:"average_rating"`
}
