package service

import (
	"context"
	"errors"
	"time"

	"octobot-be/internal/dto"
	"octobot-be/internal/entity"
	"octobot-be/internal/repository/specification"
	"octobot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITeamService interface {
	ListTeams(ctx context.Context) ([]dto.TeamResponse, error)
	CreateTeam(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
	ListMembers(ctx context.Context, teamId uuid.UUID) ([]dto.TeamMemberResponse, error)
	ListAllMembers(ctx context.Context) ([]dto.TeamMemberResponse, error)
	AddMember(ctx context.Context, req *dto.AddTeamMemberRequest) (*dto.TeamMemberResponse, error)
	RemoveMember(ctx context.Context, id uuid.UUID) error
}

type teamService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTeamService(uowFactory unitofwork.RepositoryFactory) ITeamService {
	return &teamService{
		uowFactory: uowFactory,
	}
}

func (s *teamService) ListTeams(ctx context.Context) ([]dto.TeamResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	teams, err := uow.TeamRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: false})
	if err != nil {
		return nil, err
	}

	res := make([]dto.TeamResponse, 0, len(teams))
	for _, t := range teams {
		res = append(res, dto.TeamResponse{
			Id:        t.Id,
			Name:      t.Name,
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
		})
	}
	return res, nil
}

func (s *teamService) CreateTeam(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	team := &entity.Team{
		Id:        uuid.New(),
		Name:      req.Name,
		CreatedAt: time.Now(),
	}

	if err := uow.TeamRepository().Create(ctx, team); err != nil {
		return nil, err
	}

	return &dto.TeamResponse{
		Id:        team.Id,
		Name:      team.Name,
		CreatedAt: team.CreatedAt,
	}, nil
}

// DeleteTeam removes the team and its members in one transaction.
func (s *teamService) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	team, err := uow.TeamRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if team == nil {
		return errors.New("team not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.TeamRepository().RemoveMembersByTeam(ctx, id); err != nil {
		return err
	}
	if err := uow.TeamRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *teamService) ListMembers(ctx context.Context, teamId uuid.UUID) ([]dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	members, err := uow.TeamRepository().FindMembers(ctx,
		specification.ByTeamID{TeamID: teamId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.TeamMemberResponse, 0, len(members))
	for _, m := range members {
		res = append(res, dto.TeamMemberResponse{
			Id:         m.Id,
			TeamId:     m.TeamId,
			MemberName: m.MemberName,
			CreatedAt:  m.CreatedAt,
		})
	}
	return res, nil
}

func (s *teamService) ListAllMembers(ctx context.Context) ([]dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	members, err := uow.TeamRepository().FindAllMembersWithTeam(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]dto.TeamMemberResponse, 0, len(members))
	for _, m := range members {
		res = append(res, dto.TeamMemberResponse{
			Id:         m.Id,
			TeamId:     m.TeamId,
			MemberName: m.MemberName,
			TeamName:   m.TeamName,
			CreatedAt:  m.CreatedAt,
		})
	}
	return res, nil
}

func (s *teamService) AddMember(ctx context.Context, req *dto.AddTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	team, err := uow.TeamRepository().FindOne(ctx, specification.ByID{ID: req.TeamId})
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, errors.New("team not found")
	}

	member := &entity.TeamMember{
		Id:         uuid.New(),
		TeamId:     req.TeamId,
		MemberName: req.MemberName,
		CreatedAt:  time.Now(),
	}

	if err := uow.TeamRepository().AddMember(ctx, member); err != nil {
		return nil, err
	}

	return &dto.TeamMemberResponse{
		Id:         member.Id,
		TeamId:     member.TeamId,
		MemberName: member.MemberName,
		TeamName:   team.Name,
		CreatedAt:  member.CreatedAt,
	}, nil
}

func (s *teamService) RemoveMember(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := uow.TeamRepository().FindMember(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if member == nil {
		return errors.New("team member not found")
	}

	return uow.TeamRepository().RemoveMember(ctx, id)
}
