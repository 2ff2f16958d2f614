package dto

import (
	"time"

	"github.com/google/uuid"
)

type SessionResponse struct {
	Id                   uuid.UUID  `json:"id"`
	SessionToken         string     `json:"session_token"`
	BotId                uuid.UUID  `json:"bot_id"`
	ClientTesterId       uuid.UUID  `json:"client_tester_id"`
	Status               string     `json:"status"`
	AdminNotes           *string    `json:"admin_notes"`
	ReviewSubmitted      bool       `json:"review_submitted"`
	ReviewRating         *int       `json:"review_rating"`
	ReviewComment        *string    `json:"review_comment"`
	AssignedTeamMemberId *uuid.UUID `json:"assigned_team_member_id"`
	CreatedByRefresh     bool       `json:"created_by_refresh"`
	LastSeenAt           *time.Time `json:"last_seen_at"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            *time.Time `json:"updated_at"`
}

type SessionDetailResponse struct {
	Session  SessionResponse      `json:"session"`
	Messages []MessageResponse    `json:"messages"`
	Feedback []FeedbackResponse   `json:"feedback"`
	Note     *SessionNoteResponse `json:"note"`
}

type UpdateSessionRequest struct {
	Id                   uuid.UUID
	Status               *string    `json:"status" validate:"omitempty,oneof=live completed reviewed"`
	AdminNotes           *string    `json:"admin_notes"`
	AssignedTeamMemberId *uuid.UUID `json:"assigned_team_member_id"`
}

type SubmitReviewRequest struct {
	SessionId  uuid.UUID `json:"session_id" validate:"required"`
	Rating     int       `json:"rating" validate:"required,min=1,max=5"`
	Comment    *string   `json:"comment"`
	ShareToken string    `json:"share_token" validate:"required"`
}

type SessionMessageCountResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	Count     int64     `json:"count"`
}

type ExportSessionResponse struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
}
