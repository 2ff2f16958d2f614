package implementation

import (
	"context"
	"errors"

	"octobot-be/internal/entity"
	"octobot-be/internal/mapper"
	"octobot-be/internal/model"
	"octobot-be/internal/repository/contract"
	"octobot-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TeamMapper
}

func NewTeamRepository(db *gorm.DB) contract.TeamRepository {
	return &TeamRepositoryImpl{
		db:     db,
		mapper: mapper.NewTeamMapper(),
	}
}

func (r *TeamRepositoryImpl) Create(ctx context.Context, team *entity.Team) error {
	m := r.mapper.ToModel(team)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*team = *r.mapper.ToEntity(m)
	return nil
}

func (r *TeamRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Team{}, id).Error
}

func (r *TeamRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Team, error) {
	var m model.Team
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TeamRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Team, error) {
	var models []*model.Team
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TeamRepositoryImpl) AddMember(ctx context.Context, member *entity.TeamMember) error {
	m := r.mapper.MemberToModel(member)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*member = *r.mapper.MemberToEntity(m)
	return nil
}

func (r *TeamRepositoryImpl) RemoveMember(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TeamMember{}, id).Error
}

func (r *TeamRepositoryImpl) RemoveMembersByTeam(ctx context.Context, teamId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("team_id = ?", teamId).Delete(&model.TeamMember{}).Error
}

func (r *TeamRepositoryImpl) FindMembers(ctx context.Context, specs ...specification.Specification) ([]*entity.TeamMember, error) {
	var models []*model.TeamMember
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.MembersToEntities(models), nil
}

func (r *TeamRepositoryImpl) FindMember(ctx context.Context, specs ...specification.Specification) (*entity.TeamMember, error) {
	var m model.TeamMember
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.MemberToEntity(&m), nil
}

func (r *TeamRepositoryImpl) FindAllMembersWithTeam(ctx context.Context) ([]*entity.TeamMemberWithTeam, error) {
	type row struct {
		Id         uuid.UUID
		TeamId     uuid.UUID
		MemberName string
		TeamName   string
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.TeamMember{}).
		Select("team_members.id, team_members.team_id, team_members.member_name, teams.name AS team_name").
		Joins("LEFT JOIN teams ON teams.id = team_members.team_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	members := make([]*entity.TeamMemberWithTeam, len(rows))
	for i, rw := range rows {
		members[i] = &entity.TeamMemberWithTeam{
			TeamMember: entity.TeamMember{
				Id:         rw.Id,
				TeamId:     rw.TeamId,
				MemberName: rw.MemberName,
			},
			TeamName: rw.TeamName,
		}
	}
	return members, nil
}
