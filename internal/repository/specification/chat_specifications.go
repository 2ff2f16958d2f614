package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByBotID struct {
	BotID uuid.UUID
}

func (s ByBotID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("bot_id = ?", s.BotID)
}

type ByClientTesterID struct {
	ClientTesterID uuid.UUID
}

func (s ByClientTesterID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("client_tester_id = ?", s.ClientTesterID)
}

type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

type ByMessageID struct {
	MessageID uuid.UUID
}

func (s ByMessageID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("message_id = ?", s.MessageID)
}

type ByShareToken struct {
	Token string
}

func (s ByShareToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("share_token = ?", s.Token)
}

type BySessionToken struct {
	Token string
}

func (s BySessionToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_token = ?", s.Token)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByFeedbackType struct {
	Type string
}

func (s ByFeedbackType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feedback_type = ?", s.Type)
}

// ActiveBannersForBot matches active banners scoped to the bot or global
// (bot_id IS NULL).
type ActiveBannersForBot struct {
	BotID uuid.UUID
}

func (s ActiveBannersForBot) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true).Where("bot_id = ? OR bot_id IS NULL", s.BotID)
}

type ByTeamID struct {
	TeamID uuid.UUID
}

func (s ByTeamID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("team_id = ?", s.TeamID)
}
