package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"octobot-be/internal/dto"
	"octobot-be/internal/entity"
	"octobot-be/internal/pkg/logger"
	"octobot-be/internal/repository/specification"
	"octobot-be/internal/repository/unitofwork"
	"octobot-be/pkg/export"
	"octobot-be/pkg/token"

	"github.com/google/uuid"
)

type ISessionService interface {
	// Public surface (share token)
	GetOrCreateSession(ctx context.Context, shareToken string) (*dto.ChatBootstrapResponse, error)
	CreateNewSession(ctx context.Context, shareToken string) (*dto.ChatBootstrapResponse, error)
	Heartbeat(ctx context.Context, req *dto.HeartbeatRequest) error
	SubmitReview(ctx context.Context, req *dto.SubmitReviewRequest) error
	SaveSessionNote(ctx context.Context, req *dto.SaveSessionNoteRequest) (*dto.SessionNoteResponse, error)
	GetSessionNote(ctx context.Context, sessionId uuid.UUID, shareToken string) (*dto.SessionNoteResponse, error)

	// Admin surface
	ListSessions(ctx context.Context, botId, testerId *uuid.UUID) ([]dto.SessionResponse, error)
	GetSessionDetail(ctx context.Context, id uuid.UUID) (*dto.SessionDetailResponse, error)
	UpdateSession(ctx context.Context, req *dto.UpdateSessionRequest) error
	MessageCounts(ctx context.Context) ([]dto.SessionMessageCountResponse, error)
	ExportSession(ctx context.Context, id uuid.UUID, format string) (*dto.ExportSessionResponse, error)
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, log logger.ILogger) ISessionService {
	return &sessionService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

// GetOrCreateSession resumes the tester's live session with its full
// history, or mints a new one when none is live.
func (s *sessionService) GetOrCreateSession(ctx context.Context, shareToken string) (*dto.ChatBootstrapResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tester, err := resolveTester(ctx, uow, shareToken)
	if err != nil {
		return nil, err
	}

	bot, err := uow.BotRepository().FindOne(ctx, specification.ByID{ID: tester.BotId})
	if err != nil {
		return nil, err
	}
	if bot == nil {
		return nil, errors.New("bot not found")
	}

	live, err := uow.SessionRepository().FindOne(ctx,
		specification.ByClientTesterID{ClientTesterID: tester.Id},
		specification.ByBotID{BotID: tester.BotId},
		specification.ByStatus{Status: string(entity.SessionStatusLive)},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	if live != nil {
		return s.bootstrapResponse(ctx, uow, live, bot, tester)
	}

	session, err := s.mintSession(ctx, uow, tester, false)
	if err != nil {
		return nil, err
	}

	return &dto.ChatBootstrapResponse{
		Session:  toSessionResponse(session),
		Bot:      toPublicBotResponse(bot),
		Tester:   toTesterResponse(tester),
		Messages: []dto.MessageResponse{},
	}, nil
}

// CreateNewSession always mints a fresh session. Prior sessions are left
// untouched with all their data.
func (s *sessionService) CreateNewSession(ctx context.Context, shareToken string) (*dto.ChatBootstrapResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tester, err := resolveTester(ctx, uow, shareToken)
	if err != nil {
		return nil, err
	}

	bot, err := uow.BotRepository().FindOne(ctx, specification.ByID{ID: tester.BotId})
	if err != nil {
		return nil, err
	}
	if bot == nil {
		return nil, errors.New("bot not found")
	}

	session, err := s.mintSession(ctx, uow, tester, true)
	if err != nil {
		return nil, err
	}

	return &dto.ChatBootstrapResponse{
		Session:  toSessionResponse(session),
		Bot:      toPublicBotResponse(bot),
		Tester:   toTesterResponse(tester),
		Messages: []dto.MessageResponse{},
	}, nil
}

func (s *sessionService) mintSession(ctx context.Context, uow unitofwork.UnitOfWork, tester *entity.ClientTester, byRefresh bool) (*entity.TestSession, error) {
	sessionToken, err := token.NewSessionToken()
	if err != nil {
		return nil, err
	}

	session := &entity.TestSession{
		Id:               uuid.New(),
		SessionToken:     sessionToken,
		BotId:            tester.BotId,
		ClientTesterId:   tester.Id,
		Status:           entity.SessionStatusLive,
		CreatedByRefresh: byRefresh,
		CreatedAt:        time.Now(),
	}

	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	publishDashboardEvent(ctx, s.publisher, s.logger, EventSessionCreated, map[string]interface{}{
		"session_id": session.Id,
		"bot_id":     session.BotId,
		"tester_id":  session.ClientTesterId,
		"by_refresh": byRefresh,
	})

	return session, nil
}

func (s *sessionService) bootstrapResponse(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.TestSession, bot *entity.Bot, tester *entity.ClientTester) (*dto.ChatBootstrapResponse, error) {
	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: session.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	note, err := uow.SessionNoteRepository().FindBySession(ctx, session.Id)
	if err != nil {
		return nil, err
	}

	res := &dto.ChatBootstrapResponse{
		Session:  toSessionResponse(session),
		Bot:      toPublicBotResponse(bot),
		Tester:   toTesterResponse(tester),
		Messages: toMessageResponses(messages),
	}
	if note != nil {
		noteRes := toSessionNoteResponse(note)
		res.Note = &noteRes
	}
	return res, nil
}

func (s *sessionService) Heartbeat(ctx context.Context, req *dto.HeartbeatRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	_, session, err := resolveOwnedSession(ctx, uow, req.ShareToken, req.SessionId)
	if err != nil {
		return err
	}

	return uow.SessionRepository().TouchLastSeen(ctx, session.Id)
}

// SubmitReview writes the review and forces the session to completed.
// Resubmission overwrites the previous review.
func (s *sessionService) SubmitReview(ctx context.Context, req *dto.SubmitReviewRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", req.Rating)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	_, session, err := resolveOwnedSession(ctx, uow, req.ShareToken, req.SessionId)
	if err != nil {
		return err
	}

	rating := req.Rating
	session.ReviewSubmitted = true
	session.ReviewRating = &rating
	session.ReviewComment = req.Comment
	session.Status = entity.SessionStatusCompleted

	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return err
	}

	publishDashboardEvent(ctx, s.publisher, s.logger, EventReviewSubmitted, map[string]interface{}{
		"session_id": session.Id,
		"bot_id":     session.BotId,
		"rating":     rating,
	})

	return nil
}

func (s *sessionService) SaveSessionNote(ctx context.Context, req *dto.SaveSessionNoteRequest) (*dto.SessionNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	_, session, err := resolveOwnedSession(ctx, uow, req.ShareToken, req.SessionId)
	if err != nil {
		return nil, err
	}

	note, err := uow.SessionNoteRepository().Upsert(ctx, session.Id, req.Content)
	if err != nil {
		return nil, err
	}

	res := toSessionNoteResponse(note)
	return &res, nil
}

func (s *sessionService) GetSessionNote(ctx context.Context, sessionId uuid.UUID, shareToken string) (*dto.SessionNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	_, session, err := resolveOwnedSession(ctx, uow, shareToken, sessionId)
	if err != nil {
		return nil, err
	}

	note, err := uow.SessionNoteRepository().FindBySession(ctx, session.Id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	res := toSessionNoteResponse(note)
	return &res, nil
}

func (s *sessionService) ListSessions(ctx context.Context, botId, testerId *uuid.UUID) ([]dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "created_at", Desc: true}}
	if botId != nil {
		specs = append(specs, specification.ByBotID{BotID: *botId})
	}
	if testerId != nil {
		specs = append(specs, specification.ByClientTesterID{ClientTesterID: *testerId})
	}

	sessions, err := uow.SessionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]dto.SessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		res = append(res, toSessionResponse(sess))
	}
	return res, nil
}

func (s *sessionService) GetSessionDetail(ctx context.Context, id uuid.UUID) (*dto.SessionDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errors.New("session not found")
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	feedback, err := uow.FeedbackRepository().FindAll(ctx, specification.BySessionID{SessionID: id})
	if err != nil {
		return nil, err
	}

	note, err := uow.SessionNoteRepository().FindBySession(ctx, id)
	if err != nil {
		return nil, err
	}

	res := &dto.SessionDetailResponse{
		Session:  toSessionResponse(session),
		Messages: toMessageResponses(messages),
		Feedback: toFeedbackResponses(feedback),
	}
	if note != nil {
		noteRes := toSessionNoteResponse(note)
		res.Note = &noteRes
	}
	return res, nil
}

func (s *sessionService) UpdateSession(ctx context.Context, req *dto.UpdateSessionRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if session == nil {
		return errors.New("session not found")
	}

	if req.Status != nil {
		status := entity.SessionStatus(*req.Status)
		if !entity.ValidSessionStatus(status) {
			return fmt.Errorf("invalid session status: %s", *req.Status)
		}
		session.Status = status
	}
	if req.AdminNotes != nil {
		session.AdminNotes = req.AdminNotes
	}
	if req.AssignedTeamMemberId != nil {
		member, err := uow.TeamRepository().FindMember(ctx, specification.ByID{ID: *req.AssignedTeamMemberId})
		if err != nil {
			return err
		}
		if member == nil {
			return errors.New("team member not found")
		}
		session.AssignedTeamMemberId = req.AssignedTeamMemberId
	}

	return uow.SessionRepository().Update(ctx, session)
}

func (s *sessionService) MessageCounts(ctx context.Context) ([]dto.SessionMessageCountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	counts, err := uow.MessageRepository().CountPerSession(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]dto.SessionMessageCountResponse, 0, len(counts))
	for sessionId, count := range counts {
		res = append(res, dto.SessionMessageCountResponse{
			SessionId: sessionId,
			Count:     count,
		})
	}
	return res, nil
}

func (s *sessionService) ExportSession(ctx context.Context, id uuid.UUID, format string) (*dto.ExportSessionResponse, error) {
	exportFormat := export.Format(format)
	if !export.ValidFormat(exportFormat) {
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errors.New("session not found")
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	feedback, err := uow.FeedbackRepository().FindAll(ctx, specification.BySessionID{SessionID: id})
	if err != nil {
		return nil, err
	}

	note, err := uow.SessionNoteRepository().FindBySession(ctx, id)
	if err != nil {
		return nil, err
	}

	// A deleted bot renders as "Unknown" in the transcript.
	bot, err := uow.BotRepository().FindOne(ctx, specification.ByID{ID: session.BotId})
	if err != nil {
		return nil, err
	}

	content, err := export.Render(export.Input{
		Session:  session,
		Bot:      bot,
		Messages: messages,
		Feedback: feedback,
		Note:     note,
	}, exportFormat)
	if err != nil {
		return nil, err
	}

	contentType := "text/plain; charset=utf-8"
	if exportFormat == export.FormatMarkdown {
		contentType = "text/markdown; charset=utf-8"
	}

	return &dto.ExportSessionResponse{
		FileName:    fmt.Sprintf("session-%s.%s", session.SessionToken, format),
		ContentType: contentType,
		Content:     content,
	}, nil
}

func toSessionResponse(s *entity.TestSession) dto.SessionResponse {
	return dto.SessionResponse{
		Id:                   s.Id,
		SessionToken:         s.SessionToken,
		BotId:                s.BotId,
		ClientTesterId:       s.ClientTesterId,
		Status:               string(s.Status),
		AdminNotes:           s.AdminNotes,
		ReviewSubmitted:      s.ReviewSubmitted,
		ReviewRating:         s.ReviewRating,
		ReviewComment:        s.ReviewComment,
		AssignedTeamMemberId: s.AssignedTeamMemberId,
		CreatedByRefresh:     s.CreatedByRefresh,
		LastSeenAt:           s.LastSeenAt,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func toMessageResponses(messages []*entity.Message) []dto.MessageResponse {
	res := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		res = append(res, dto.MessageResponse{
			Id:            m.Id,
			SessionId:     m.SessionId,
			Role:          string(m.Role),
			Content:       m.Content,
			EditedContent: m.EditedContent,
			CreatedAt:     m.CreatedAt,
		})
	}
	return res
}

func toFeedbackResponses(feedback []*entity.MessageFeedback) []dto.FeedbackResponse {
	res := make([]dto.FeedbackResponse, 0, len(feedback))
	for _, f := range feedback {
		res = append(res, dto.FeedbackResponse{
			Id:           f.Id,
			MessageId:    f.MessageId,
			SessionId:    f.SessionId,
			FeedbackType: string(f.Type),
			Comment:      f.Comment,
			CreatedAt:    f.CreatedAt,
		})
	}
	return res
}

func toSessionNoteResponse(n *entity.SessionNote) dto.SessionNoteResponse {
	return dto.SessionNoteResponse{
		Id:        n.Id,
		SessionId: n.SessionId,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
