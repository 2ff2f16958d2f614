package model

import (
	"time"

	"github.com/google/uuid"
)

type TestSession struct {
	Id                   uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionToken         string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	BotId                uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClientTesterId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status               string     `gorm:"type:varchar(16);not null;default:live;index"`
	AdminNotes           *string    `gorm:"type:text"`
	ReviewSubmitted      bool       `gorm:"not null;default:false"`
	ReviewRating         *int       `gorm:""`
	ReviewComment        *string    `gorm:"type:text"`
	AssignedTeamMemberId *uuid.UUID `gorm:"type:uuid"`
	CreatedByRefresh     bool       `gorm:"not null;default:false"`
	LastSeenAt           *time.Time
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`
}

func (TestSession) TableName() string {
	return "test_sessions"
}
