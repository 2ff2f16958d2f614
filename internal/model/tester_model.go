package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientTester struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Email      *string   `gorm:"type:varchar(320)"`
	BotId      uuid.UUID `gorm:"type:uuid;not null;index"`
	ShareToken string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
	// Soft delete backs the recycle-bin flow; the share token survives
	// delete/restore untouched.
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ClientTester) TableName() string {
	return "client_testers"
}
