// Package dashboard aggregates the counters behind the admin analytics
// views.
package dashboard

import (
	"context"
	"math"

	"github.com/google/uuid"

	"octobot-be/internal/dto"
	"octobot-be/internal/entity"
	"octobot-be/internal/pkg/logger"
	"octobot-be/internal/repository/specification"
	"octobot-be/internal/repository/unitofwork"
)

// Aggregator computes dashboard statistics
type Aggregator struct {
	logger logger.ILogger
}

func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// GetOverview computes the global analytics counters. Bot status buckets
// are grouped on the raw column and folded through the legacy mapping so
// pre-migration rows land in the right bucket.
func (a *Aggregator) GetOverview(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.AnalyticsOverview, error) {
	totalBots, err := uow.BotRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	totalTesters, err := uow.TesterRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	totalSessions, err := uow.SessionRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	liveSessions, err := uow.SessionRepository().Count(ctx, specification.ByStatus{Status: string(entity.SessionStatusLive)})
	if err != nil {
		return nil, err
	}

	completedSessions, err := uow.SessionRepository().Count(ctx, specification.ByStatus{Status: string(entity.SessionStatusCompleted)})
	if err != nil {
		return nil, err
	}

	reviewedSessions, err := uow.SessionRepository().Count(ctx, specification.ByStatus{Status: string(entity.SessionStatusReviewed)})
	if err != nil {
		return nil, err
	}

	totalMessages, err := uow.MessageRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	totalLikes, err := uow.FeedbackRepository().Count(ctx, specification.ByFeedbackType{Type: string(entity.FeedbackTypeLike)})
	if err != nil {
		return nil, err
	}

	totalDislikes, err := uow.FeedbackRepository().Count(ctx, specification.ByFeedbackType{Type: string(entity.FeedbackTypeDislike)})
	if err != nil {
		return nil, err
	}

	overview := &dto.AnalyticsOverview{
		TotalBots:         int(totalBots),
		TotalTesters:      int(totalTesters),
		TotalSessions:     int(totalSessions),
		LiveSessions:      int(liveSessions),
		CompletedSessions: int(completedSessions),
		ReviewedSessions:  int(reviewedSessions),
		TotalMessages:     int(totalMessages),
		TotalLikes:        int(totalLikes),
		TotalDislikes:     int(totalDislikes),
	}

	// Status bucketing must not sink the whole overview; rows with
	// unknown values are simply not counted.
	statusCounts, err := uow.BotRepository().CountByRawStatus(ctx)
	if err != nil {
		a.logger.Warn("dashboard", "failed to count bot statuses", map[string]interface{}{"error": err.Error()})
		return overview, nil
	}

	for raw, cnt := range statusCounts {
		switch entity.NormalizeBotStatus(raw) {
		case entity.BotStatusInReview:
			overview.BotsInReview += int(cnt)
		case entity.BotStatusTesting:
			overview.BotsTesting += int(cnt)
		case entity.BotStatusLive:
			overview.BotsLive += int(cnt)
		case entity.BotStatusNotLive:
			overview.BotsNotLive += int(cnt)
		case entity.BotStatusCancelled:
			overview.BotsCancelled += int(cnt)
		}
	}

	return overview, nil
}

// GetBotAnalytics computes per-bot session counters and the average
// submitted review rating, rounded to one decimal. Zero when no reviews
// have been submitted.
func (a *Aggregator) GetBotAnalytics(ctx context.Context, uow unitofwork.UnitOfWork, botId uuid.UUID) (*dto.BotAnalyticsResponse, error) {
	byBot := specification.ByBotID{BotID: botId}

	total, err := uow.SessionRepository().Count(ctx, byBot)
	if err != nil {
		return nil, err
	}

	live, err := uow.SessionRepository().Count(ctx, byBot, specification.ByStatus{Status: string(entity.SessionStatusLive)})
	if err != nil {
		return nil, err
	}

	completed, err := uow.SessionRepository().Count(ctx, byBot, specification.ByStatus{Status: string(entity.SessionStatusCompleted)})
	if err != nil {
		return nil, err
	}

	reviewed, err := uow.SessionRepository().Count(ctx, byBot, specification.ByStatus{Status: string(entity.SessionStatusReviewed)})
	if err != nil {
		return nil, err
	}

	ratings, err := uow.SessionRepository().SubmittedRatings(ctx, botId)
	if err != nil {
		return nil, err
	}

	return &dto.BotAnalyticsResponse{
		BotId:             botId,
		TotalSessions:     int(total),
		LiveSessions:      int(live),
		CompletedSessions: int(completed),
		ReviewedSessions:  int(reviewed),
		AverageRating:     AverageRating(ratings),
	}, nil
}

// AverageRating rounds the mean of ratings to one decimal place and
// returns 0 for an empty slice.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10
}
