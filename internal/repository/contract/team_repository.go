package contract

import (
	"context"

	"octobot-be/internal/entity"
	"octobot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TeamRepository interface {
	Create(ctx context.Context, team *entity.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Team, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Team, error)

	AddMember(ctx context.Context, member *entity.TeamMember) error
	RemoveMember(ctx context.Context, id uuid.UUID) error
	RemoveMembersByTeam(ctx context.Context, teamId uuid.UUID) error
	FindMembers(ctx context.Context, specs ...specification.Specification) ([]*entity.TeamMember, error)
	FindMember(ctx context.Context, specs ...specification.Specification) (*entity.TeamMember, error)
	// FindAllMembersWithTeam joins the team name for the dashboard listing.
	FindAllMembersWithTeam(ctx context.Context) ([]*entity.TeamMemberWithTeam, error)
}
