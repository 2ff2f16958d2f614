package model

import (
	"time"

	"github.com/google/uuid"
)

type Bot struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	ClientName   string    `gorm:"type:varchar(255);not null"`
	BrandLogoUrl *string   `gorm:"type:text"`
	RelayApiUrl  string    `gorm:"type:text;not null"`
	RelayApiKey  *string   `gorm:"type:text"`
	FirstMessage *string   `gorm:"type:text"`
	// Stored as text, not a DB enum: legacy rows may still hold the retired
	// active/paused/archived values and must keep loading.
	Status      string    `gorm:"type:varchar(32);not null;default:testing;index"`
	CreatedById uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Bot) TableName() string {
	return "bots"
}
