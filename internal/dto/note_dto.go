package dto

import (
	"time"

	"github.com/google/uuid"
)

type SaveSessionNoteRequest struct {
	SessionId  uuid.UUID `json:"session_id" validate:"required"`
	Content    string    `json:"content"`
	ShareToken string    `json:"share_token" validate:"required"`
}

type SessionNoteResponse struct {
	Id        uuid.UUID  `json:"id"`
	SessionId uuid.UUID  `json:"session_id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type CreateClientNoteRequest struct {
	ClientTesterId uuid.UUID `json:"client_tester_id" validate:"required"`
	Content        string    `json:"content" validate:"required,min=1"`
}

type ClientNoteResponse struct {
	Id             uuid.UUID  `json:"id"`
	ClientTesterId uuid.UUID  `json:"client_tester_id"`
	Content        string     `json:"content"`
	CreatedById    uuid.UUID  `json:"created_by_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}
