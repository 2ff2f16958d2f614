package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionStatusLive      SessionStatus = "live"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusReviewed  SessionStatus = "reviewed"
)

func ValidSessionStatus(s SessionStatus) bool {
	switch s {
	case SessionStatusLive, SessionStatusCompleted, SessionStatusReviewed:
		return true
	}
	return false
}

type TestSession struct {
	Id                   uuid.UUID
	SessionToken         string
	BotId                uuid.UUID
	ClientTesterId       uuid.UUID
	Status               SessionStatus
	AdminNotes           *string
	ReviewSubmitted      bool
	ReviewRating         *int
	ReviewComment        *string
	AssignedTeamMemberId *uuid.UUID
	// CreatedByRefresh marks sessions minted by the explicit "start fresh"
	// action, which bypasses the one-live-session reuse rule.
	CreatedByRefresh bool
	LastSeenAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}
