package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"octobot-be/internal/dto"
	"octobot-be/internal/entity"
	"octobot-be/internal/repository/specification"
	"octobot-be/internal/repository/unitofwork"
	"octobot-be/pkg/admin/dashboard"

	"github.com/google/uuid"
)

type IBotService interface {
	ListBots(ctx context.Context) ([]dto.BotResponse, error)
	GetBot(ctx context.Context, id uuid.UUID) (*dto.BotResponse, error)
	CreateBot(ctx context.Context, req *dto.CreateBotRequest, actorId uuid.UUID) (*dto.BotResponse, error)
	UpdateBot(ctx context.Context, req *dto.UpdateBotRequest) (*dto.BotResponse, error)
	DeleteBot(ctx context.Context, id uuid.UUID) error
	GetBotAnalytics(ctx context.Context, id uuid.UUID) (*dto.BotAnalyticsResponse, error)
}

type botService struct {
	uowFactory unitofwork.RepositoryFactory
	aggregator *dashboard.Aggregator
}

func NewBotService(uowFactory unitofwork.RepositoryFactory, aggregator *dashboard.Aggregator) IBotService {
	return &botService{
		uowFactory: uowFactory,
		aggregator: aggregator,
	}
}

func (s *botService) ListBots(ctx context.Context) ([]dto.BotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bots, err := uow.BotRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	res := make([]dto.BotResponse, 0, len(bots))
	for _, b := range bots {
		res = append(res, toBotResponse(b))
	}
	return res, nil
}

func (s *botService) GetBot(ctx context.Context, id uuid.UUID) (*dto.BotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bot, err := uow.BotRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if bot == nil {
		return nil, errors.New("bot not found")
	}

	res := toBotResponse(bot)
	return &res, nil
}

func (s *botService) CreateBot(ctx context.Context, req *dto.CreateBotRequest, actorId uuid.UUID) (*dto.BotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status := entity.BotStatusTesting
	if req.Status != "" {
		status = entity.NormalizeBotStatus(req.Status)
		if !entity.ValidBotStatus(status) {
			return nil, fmt.Errorf("invalid bot status: %s", req.Status)
		}
	}

	bot := &entity.Bot{
		Id:           uuid.New(),
		Name:         req.Name,
		ClientName:   req.ClientName,
		BrandLogoUrl: req.BrandLogoUrl,
		RelayApiUrl:  req.RelayApiUrl,
		RelayApiKey:  req.RelayApiKey,
		FirstMessage: req.FirstMessage,
		Status:       status,
		CreatedById:  actorId,
		CreatedAt:    time.Now(),
	}

	if err := uow.BotRepository().Create(ctx, bot); err != nil {
		return nil, err
	}

	res := toBotResponse(bot)
	return &res, nil
}

func (s *botService) UpdateBot(ctx context.Context, req *dto.UpdateBotRequest) (*dto.BotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bot, err := uow.BotRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if bot == nil {
		return nil, errors.New("bot not found")
	}

	if req.Name != nil {
		bot.Name = *req.Name
	}
	if req.ClientName != nil {
		bot.ClientName = *req.ClientName
	}
	if req.BrandLogoUrl != nil {
		bot.BrandLogoUrl = req.BrandLogoUrl
	}
	if req.RelayApiUrl != nil {
		bot.RelayApiUrl = *req.RelayApiUrl
	}
	if req.RelayApiKey != nil {
		bot.RelayApiKey = req.RelayApiKey
	}
	if req.FirstMessage != nil {
		bot.FirstMessage = req.FirstMessage
	}
	if req.Status != nil {
		status := entity.NormalizeBotStatus(*req.Status)
		if !entity.ValidBotStatus(status) {
			return nil, fmt.Errorf("invalid bot status: %s", *req.Status)
		}
		bot.Status = status
	}

	if err := uow.BotRepository().Update(ctx, bot); err != nil {
		return nil, err
	}

	res := toBotResponse(bot)
	return &res, nil
}

// DeleteBot removes the bot only. Testers, sessions and messages are
// kept; orphaned sessions render with an unknown bot.
func (s *botService) DeleteBot(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bot, err := uow.BotRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if bot == nil {
		return errors.New("bot not found")
	}

	return uow.BotRepository().Delete(ctx, id)
}

func (s *botService) GetBotAnalytics(ctx context.Context, id uuid.UUID) (*dto.BotAnalyticsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bot, err := uow.BotRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if bot == nil {
		return nil, errors.New("bot not found")
	}

	return s.aggregator.GetBotAnalytics(ctx, uow, id)
}

func toBotResponse(b *entity.Bot) dto.BotResponse {
	return dto.BotResponse{
		Id:           b.Id,
		Name:         b.Name,
		ClientName:   b.ClientName,
		BrandLogoUrl: b.BrandLogoUrl,
		RelayApiUrl:  b.RelayApiUrl,
		RelayApiKey:  b.RelayApiKey,
		FirstMessage: b.FirstMessage,
		Status:       string(b.Status),
		CreatedById:  b.CreatedById,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func toPublicBotResponse(b *entity.Bot) dto.PublicBotResponse {
	return dto.PublicBotResponse{
		Id:           b.Id,
		Name:         b.Name,
		ClientName:   b.ClientName,
		BrandLogoUrl: b.BrandLogoUrl,
		FirstMessage: b.FirstMessage,
		Status:       string(b.Status),
	}
}
