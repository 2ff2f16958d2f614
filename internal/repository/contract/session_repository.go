package contract

import (
	"context"

	"octobot-be/internal/entity"
	"octobot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.TestSession) error
	Update(ctx context.Context, session *entity.TestSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TestSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TestSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// TouchLastSeen updates the presence timestamp without rewriting the row.
	TouchLastSeen(ctx context.Context, id uuid.UUID) error
	// SubmittedRatings returns the ratings of sessions with a submitted
	// review for one bot, nulls excluded.
	SubmittedRatings(ctx context.Context, botId uuid.UUID) ([]int, error)
}
