package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionNote is the single tester-authored note on a session (upsert).
type SessionNote struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ClientNote is an admin-authored annotation about a tester, many per tester.
type ClientNote struct {
	Id             uuid.UUID
	ClientTesterId uuid.UUID
	Content        string
	CreatedById    uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
