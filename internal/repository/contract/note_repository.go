package contract

import (
	"context"

	"octobot-be/internal/entity"
	"octobot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SessionNoteRepository interface {
	// Upsert creates the session's note or replaces its content.
	Upsert(ctx context.Context, sessionId uuid.UUID, content string) (*entity.SessionNote, error)
	FindBySession(ctx context.Context, sessionId uuid.UUID) (*entity.SessionNote, error)
}

type ClientNoteRepository interface {
	Create(ctx context.Context, note *entity.ClientNote) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClientNote, error)
}
