package entity

import (
	"time"

	"github.com/google/uuid"
)

type BotStatus string

const (
	BotStatusInReview  BotStatus = "in_review"
	BotStatusTesting   BotStatus = "testing"
	BotStatusLive      BotStatus = "live"
	BotStatusNotLive   BotStatus = "not_live"
	BotStatusCancelled BotStatus = "cancelled"
)

// legacyBotStatuses maps the retired three-value status set onto the
// current one. Rows written before the enum migration still carry these
// values, so every read boundary must normalize through this table.
var legacyBotStatuses = map[string]BotStatus{
	"active":   BotStatusLive,
	"paused":   BotStatusNotLive,
	"archived": BotStatusCancelled,
}

// NormalizeBotStatus maps a raw status column value onto the current enum.
// Unknown values pass through unchanged so they stay visible in listings.
func NormalizeBotStatus(raw string) BotStatus {
	if s, ok := legacyBotStatuses[raw]; ok {
		return s
	}
	return BotStatus(raw)
}

// ValidBotStatus reports whether s is one of the current five statuses.
func ValidBotStatus(s BotStatus) bool {
	switch s {
	case BotStatusInReview, BotStatusTesting, BotStatusLive, BotStatusNotLive, BotStatusCancelled:
		return true
	}
	return false
}

type Bot struct {
	Id           uuid.UUID
	Name         string
	ClientName   string
	BrandLogoUrl *string
	RelayApiUrl  string
	RelayApiKey  *string
	FirstMessage *string
	Status       BotStatus
	CreatedById  uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
