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

// INoteService covers admin-authored notes about testers. Tester-authored
// session notes live on the session service.
type INoteService interface {
	ListClientNotes(ctx context.Context, clientTesterId uuid.UUID) ([]dto.ClientNoteResponse, error)
	CreateClientNote(ctx context.Context, req *dto.CreateClientNoteRequest, actorId uuid.UUID) (*dto.ClientNoteResponse, error)
	DeleteClientNote(ctx context.Context, id uuid.UUID) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory) INoteService {
	return &noteService{
		uowFactory: uowFactory,
	}
}

func (s *noteService) ListClientNotes(ctx context.Context, clientTesterId uuid.UUID) ([]dto.ClientNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.ClientNoteRepository().FindAll(ctx,
		specification.ByClientTesterID{ClientTesterID: clientTesterId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ClientNoteResponse, 0, len(notes))
	for _, n := range notes {
		res = append(res, toClientNoteResponse(n))
	}
	return res, nil
}

func (s *noteService) CreateClientNote(ctx context.Context, req *dto.CreateClientNoteRequest, actorId uuid.UUID) (*dto.ClientNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Notes may target recycled testers too; admins keep context on who
	// they removed.
	tester, err := uow.TesterRepository().FindOne(ctx, specification.ByID{ID: req.ClientTesterId})
	if err != nil {
		return nil, err
	}
	if tester == nil {
		deleted, err := uow.TesterRepository().FindDeleted(ctx, specification.ByID{ID: req.ClientTesterId})
		if err != nil {
			return nil, err
		}
		if len(deleted) == 0 {
			return nil, errors.New("tester not found")
		}
	}

	note := &entity.ClientNote{
		Id:             uuid.New(),
		ClientTesterId: req.ClientTesterId,
		Content:        req.Content,
		CreatedById:    actorId,
		CreatedAt:      time.Now(),
	}

	if err := uow.ClientNoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	res := toClientNoteResponse(note)
	return &res, nil
}

func (s *noteService) DeleteClientNote(ctx context.Context, id uuid.UUID) error {
	return s.uowFactory.NewUnitOfWork(ctx).ClientNoteRepository().Delete(ctx, id)
}

func toClientNoteResponse(n *entity.ClientNote) dto.ClientNoteResponse {
	return dto.ClientNoteResponse{
		Id:             n.Id,
		ClientTesterId: n.ClientTesterId,
		Content:        n.Content,
		CreatedById:    n.CreatedById,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}
