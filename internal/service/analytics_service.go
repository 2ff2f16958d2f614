package service

import (
	"context"

	"octobot-be/internal/dto"
	"octobot-be/internal/repository/unitofwork"
	"octobot-be/pkg/admin/dashboard"
)

type IAnalyticsService interface {
	Overview(ctx context.Context) (*dto.AnalyticsOverview, error)
}

type analyticsService struct {
	uowFactory unitofwork.RepositoryFactory
	aggregator *dashboard.Aggregator
}

func NewAnalyticsService(uowFactory unitofwork.RepositoryFactory, aggregator *dashboard.Aggregator) IAnalyticsService {
	return &analyticsService{
		uowFactory: uowFactory,
		aggregator: aggregator,
	}
}

func (s *analyticsService) Overview(ctx context.Context) (*dto.AnalyticsOverview, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.aggregator.GetOverview(ctx, uow)
}
