package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"octobot-be/internal/dto"
	"octobot-be/internal/entity"
	"octobot-be/internal/pkg/logger"
	"octobot-be/internal/pkg/mailer"
	"octobot-be/internal/repository/specification"
	"octobot-be/internal/repository/unitofwork"
	"octobot-be/pkg/token"

	"github.com/google/uuid"
)

type ITesterService interface {
	ListTesters(ctx context.Context, botId *uuid.UUID) ([]dto.TesterResponse, error)
	CreateTester(ctx context.Context, req *dto.CreateTesterRequest) (*dto.TesterResponse, error)
	UpdateTester(ctx context.Context, req *dto.UpdateTesterRequest) (*dto.TesterResponse, error)
	DeleteTester(ctx context.Context, id uuid.UUID) error
	ListDeletedTesters(ctx context.Context) ([]dto.TesterResponse, error)
	RestoreTester(ctx context.Context, id uuid.UUID) error
	PurgeTester(ctx context.Context, id uuid.UUID) error
}

type testerService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewTesterService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, log logger.ILogger) ITesterService {
	return &testerService{
		uowFactory:   uowFactory,
		emailService: emailService,
		logger:       log,
	}
}

func (s *testerService) ListTesters(ctx context.Context, botId *uuid.UUID) ([]dto.TesterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "created_at", Desc: true}}
	if botId != nil {
		specs = append(specs, specification.ByBotID{BotID: *botId})
	}

	testers, err := uow.TesterRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]dto.TesterResponse, 0, len(testers))
	for _, t := range testers {
		res = append(res, toTesterResponse(t))
	}
	return res, nil
}

func (s *testerService) CreateTester(ctx context.Context, req *dto.CreateTesterRequest) (*dto.TesterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bot, err := uow.BotRepository().FindOne(ctx, specification.ByID{ID: req.BotId})
	if err != nil {
		return nil, err
	}
	if bot == nil {
		return nil, errors.New("bot not found")
	}

	shareToken, err := token.NewShareToken()
	if err != nil {
		return nil, err
	}

	tester := &entity.ClientTester{
		Id:         uuid.New(),
		Name:       req.Name,
		Email:      req.Email,
		BotId:      req.BotId,
		ShareToken: shareToken,
		IsActive:   true,
		CreatedAt:  time.Now(),
	}

	if err := uow.TesterRepository().Create(ctx, tester); err != nil {
		return nil, err
	}

	if req.SendInvite && req.Email != nil && *req.Email != "" {
		go func(toEmail, name, botName, share string) {
			if err := s.emailService.SendTesterInvite(toEmail, name, botName, share); err != nil {
				s.logger.Warn("tester", "failed to send invite email", map[string]interface{}{
					"email": toEmail,
					"error": err.Error(),
				})
			}
		}(*req.Email, tester.Name, bot.Name, shareToken)
	}

	res := toTesterResponse(tester)
	return &res, nil
}

func (s *testerService) UpdateTester(ctx context.Context, req *dto.UpdateTesterRequest) (*dto.TesterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tester, err := uow.TesterRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if tester == nil {
		return nil, errors.New("tester not found")
	}

	if req.Name != nil {
		tester.Name = *req.Name
	}
	if req.Email != nil {
		tester.Email = req.Email
	}
	if req.IsActive != nil {
		tester.IsActive = *req.IsActive
	}

	if err := uow.TesterRepository().Update(ctx, tester); err != nil {
		return nil, err
	}

	res := toTesterResponse(tester)
	return &res, nil
}

func (s *testerService) DeleteTester(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tester, err := uow.TesterRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if tester == nil {
		return errors.New("tester not found")
	}

	return uow.TesterRepository().SoftDelete(ctx, id)
}

func (s *testerService) ListDeletedTesters(ctx context.Context) ([]dto.TesterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	testers, err := uow.TesterRepository().FindDeleted(ctx, specification.OrderBy{Field: "deleted_at", Desc: true})
	if err != nil {
		return nil, err
	}

	res := make([]dto.TesterResponse, 0, len(testers))
	for _, t := range testers {
		res = append(res, toTesterResponse(t))
	}
	return res, nil
}

// RestoreTester brings a recycled tester back. The share token is kept,
// so previously distributed links start working again.
func (s *testerService) RestoreTester(ctx context.Context, id uuid.UUID) error {
	return s.uowFactory.NewUnitOfWork(ctx).TesterRepository().Restore(ctx, id)
}

// PurgeTester permanently removes a tester from the recycle bin.
// Sessions and messages survive for audit purposes.
func (s *testerService) PurgeTester(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deleted, err := uow.TesterRepository().FindDeleted(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if len(deleted) == 0 {
		return fmt.Errorf("tester %s is not in the recycle bin", id)
	}

	return uow.TesterRepository().HardDelete(ctx, id)
}

func toTesterResponse(t *entity.ClientTester) dto.TesterResponse {
	return dto.TesterResponse{
		Id:         t.Id,
		Name:       t.Name,
		Email:      t.Email,
		BotId:      t.BotId,
		ShareToken: t.ShareToken,
		IsActive:   t.IsActive,
		IsDeleted:  t.IsDeleted,
		DeletedAt:  t.DeletedAt,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
