package mapper

import (
	"octobot-be/internal/entity"
	"octobot-be/internal/model"
)

type TeamMapper struct{}

func NewTeamMapper() *TeamMapper {
	return &TeamMapper{}
}

func (m *TeamMapper) ToEntity(t *model.Team) *entity.Team {
	if t == nil {
		return nil
	}
	return &entity.Team{
		Id:        t.Id,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: updatedAtPtr(t.UpdatedAt),
	}
}

func (m *TeamMapper) ToModel(t *entity.Team) *model.Team {
	if t == nil {
		return nil
	}
	return &model.Team{
		Id:        t.Id,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: derefTime(t.UpdatedAt),
	}
}

func (m *TeamMapper) ToEntities(teams []*model.Team) []*entity.Team {
	entities := make([]*entity.Team, len(teams))
	for i, t := range teams {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

func (m *TeamMapper) MemberToEntity(t *model.TeamMember) *entity.TeamMember {
	if t == nil {
		return nil
	}
	return &entity.TeamMember{
		Id:         t.Id,
		TeamId:     t.TeamId,
		MemberName: t.MemberName,
		CreatedAt:  t.CreatedAt,
	}
}

func (m *TeamMapper) MemberToModel(t *entity.TeamMember) *model.TeamMember {
	if t == nil {
		return nil
	}
	return &model.TeamMember{
		Id:         t.Id,
		TeamId:     t.TeamId,
		MemberName: t.MemberName,
		CreatedAt:  t.CreatedAt,
	}
}

func (m *TeamMapper) MembersToEntities(members []*model.TeamMember) []*entity.TeamMember {
	entities := make([]*entity.TeamMember, len(members))
	for i, t := range members {
		entities[i] = m.MemberToEntity(t)
	}
	return entities
}
