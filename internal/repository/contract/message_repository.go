package contract

import (
	"context"

	"octobot-be/internal/entity"
	"octobot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *entity.Message) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SetEditedContent writes the ideal-answer override; repeated calls
	// overwrite, the original content is never touched.
	SetEditedContent(ctx context.Context, id uuid.UUID, content string) error
	// CountPerSession returns message counts grouped by session.
	CountPerSession(ctx context.Context) (map[uuid.UUID]int64, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, fb *entity.MessageFeedback) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MessageFeedback, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
