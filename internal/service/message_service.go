package service

import (
	"context"
	"errors"
	"time"

	"octobot-be/internal/dto"
	"octobot-be/internal/entity"
	"octobot-be/internal/pkg/logger"
	"octobot-be/internal/repository/specification"
	"octobot-be/internal/repository/unitofwork"
	"octobot-be/pkg/relay"

	"github.com/google/uuid"
)

type IMessageService interface {
	SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	EditMessage(ctx context.Context, req *dto.EditMessageRequest) error
	SubmitFeedback(ctx context.Context, req *dto.MessageFeedbackRequest) (*dto.FeedbackResponse, error)
}

type messageService struct {
	uowFactory  unitofwork.RepositoryFactory
	relayClient *relay.Client
	publisher   IPublisherService
	logger      logger.ILogger
}

func NewMessageService(uowFactory unitofwork.RepositoryFactory, relayClient *relay.Client, publisher IPublisherService, log logger.ILogger) IMessageService {
	return &messageService{
		uowFactory:  uowFactory,
		relayClient: relayClient,
		publisher:   publisher,
		logger:      log,
	}
}

// SendMessage persists the tester's message, relays it to the bot's
// agent endpoint and persists the reply. The user message is written
// BEFORE the relay call so a dead agent never loses tester input; relay
// failures become a synthetic bot message rather than an API error.
func (s *messageService) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	_, session, err := resolveOwnedSession(ctx, uow, req.ShareToken, req.SessionId)
	if err != nil {
		return nil, err
	}

	bot, err := uow.BotRepository().FindOne(ctx, specification.ByID{ID: session.BotId})
	if err != nil {
		return nil, err
	}
	if bot == nil {
		return nil, errors.New("bot not found")
	}

	userMsg := &entity.Message{
		Id:        uuid.New(),
		SessionId: session.Id,
		Role:      entity.MessageRoleUser,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, userMsg); err != nil {
		return nil, err
	}

	apiKey := ""
	if bot.RelayApiKey != nil {
		apiKey = *bot.RelayApiKey
	}

	botMsg := &entity.Message{
		Id:        uuid.New(),
		SessionId: session.Id,
		Role:      entity.MessageRoleBot,
		CreatedAt: time.Now(),
	}

	result, err := s.relayClient.Ask(ctx, bot.RelayApiUrl, apiKey, session.SessionToken, req.Content)
	if err != nil {
		s.logger.Warn("relay", "agent call failed", map[string]interface{}{
			"session_id": session.Id,
			"bot_id":     bot.Id,
			"error":      err.Error(),
		})
		botMsg.Content = "Error: " + err.Error()
		botMsg.Meta = &entity.RelayMeta{Error: err.Error()}
	} else {
		botMsg.Content = result.Reply
		botMsg.Meta = &entity.RelayMeta{
			UpstreamStatus: result.UpstreamStatus,
			LatencyMs:      result.Latency.Milliseconds(),
		}
	}

	if err := uow.MessageRepository().Create(ctx, botMsg); err != nil {
		return nil, err
	}

	publishDashboardEvent(ctx, s.publisher, s.logger, EventMessageStored, map[string]interface{}{
		"session_id":     session.Id,
		"bot_id":         session.BotId,
		"user_message":   userMsg.Id,
		"bot_message":    botMsg.Id,
		"relay_degraded": err != nil,
	})

	return &dto.SendMessageResponse{
		UserMessageId: userMsg.Id,
		BotMessageId:  botMsg.Id,
		BotReply:      botMsg.Content,
	}, nil
}

// EditMessage stores the tester's ideal-answer override next to the
// original content. Repeated edits overwrite.
func (s *messageService) EditMessage(ctx context.Context, req *dto.EditMessageRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	msg, err := uow.MessageRepository().FindOne(ctx, specification.ByID{ID: req.MessageId})
	if err != nil {
		return err
	}
	if msg == nil {
		return errors.New("message not found")
	}

	// The share token must own the session the message belongs to.
	if _, _, err := resolveOwnedSession(ctx, uow, req.ShareToken, msg.SessionId); err != nil {
		return err
	}

	return uow.MessageRepository().SetEditedContent(ctx, msg.Id, req.EditedContent)
}

// SubmitFeedback records a like/dislike. Feedback accumulates; sending
// twice records two entries.
func (s *messageService) SubmitFeedback(ctx context.Context, req *dto.MessageFeedbackRequest) (*dto.FeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	_, session, err := resolveOwnedSession(ctx, uow, req.ShareToken, req.SessionId)
	if err != nil {
		return nil, err
	}

	msg, err := uow.MessageRepository().FindOne(ctx, specification.ByID{ID: req.MessageId})
	if err != nil {
		return nil, err
	}
	if msg == nil || msg.SessionId != session.Id {
		return nil, errors.New("message not found")
	}

	fb := &entity.MessageFeedback{
		Id:        uuid.New(),
		MessageId: req.MessageId,
		SessionId: session.Id,
		Type:      entity.FeedbackType(req.FeedbackType),
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := uow.FeedbackRepository().Create(ctx, fb); err != nil {
		return nil, err
	}

	return &dto.FeedbackResponse{
		Id:           fb.Id,
		MessageId:    fb.MessageId,
		SessionId:    fb.SessionId,
		FeedbackType: string(fb.Type),
		Comment:      fb.Comment,
		CreatedAt:    fb.CreatedAt,
	}, nil
}
