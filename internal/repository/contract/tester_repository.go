package contract

import (
	"context"

	"octobot-be/internal/entity"
	"octobot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TesterRepository interface {
	Create(ctx context.Context, tester *entity.ClientTester) error
	Update(ctx context.Context, tester *entity.ClientTester) error
	// SoftDelete moves the tester to the recycle bin.
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// Restore clears the soft-delete mark; the share token is untouched.
	Restore(ctx context.Context, id uuid.UUID) error
	// HardDelete permanently removes a recycled tester.
	HardDelete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ClientTester, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClientTester, error)
	// FindDeleted lists the recycle bin.
	FindDeleted(ctx context.Context, specs ...specification.Specification) ([]*entity.ClientTester, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
