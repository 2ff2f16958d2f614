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

type IBannerService interface {
	ListBanners(ctx context.Context) ([]dto.BannerResponse, error)
	CreateBanner(ctx context.Context, req *dto.CreateBannerRequest, actorId uuid.UUID) (*dto.BannerResponse, error)
	UpdateBanner(ctx context.Context, req *dto.UpdateBannerRequest) (*dto.BannerResponse, error)
	DeleteBanner(ctx context.Context, id uuid.UUID) error
	// ActiveBannersForBot serves the public chat surface: active banners
	// scoped to the bot plus the global ones.
	ActiveBannersForBot(ctx context.Context, shareToken string) ([]dto.BannerResponse, error)
}

type bannerService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewBannerService(uowFactory unitofwork.RepositoryFactory) IBannerService {
	return &bannerService{
		uowFactory: uowFactory,
	}
}

func (s *bannerService) ListBanners(ctx context.Context) ([]dto.BannerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	banners, err := uow.BannerRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	res := make([]dto.BannerResponse, 0, len(banners))
	for _, b := range banners {
		res = append(res, toBannerResponse(b))
	}
	return res, nil
}

func (s *bannerService) CreateBanner(ctx context.Context, req *dto.CreateBannerRequest, actorId uuid.UUID) (*dto.BannerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	banner := &entity.Banner{
		Id:          uuid.New(),
		Title:       req.Title,
		Content:     req.Content,
		BotId:       req.BotId,
		IsActive:    isActive,
		CreatedById: actorId,
		CreatedAt:   time.Now(),
	}

	if err := uow.BannerRepository().Create(ctx, banner); err != nil {
		return nil, err
	}

	res := toBannerResponse(banner)
	return &res, nil
}

func (s *bannerService) UpdateBanner(ctx context.Context, req *dto.UpdateBannerRequest) (*dto.BannerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	banner, err := uow.BannerRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, errors.New("banner not found")
	}

	if req.Title != nil {
		banner.Title = *req.Title
	}
	if req.Content != nil {
		banner.Content = *req.Content
	}
	if req.BotId != nil {
		banner.BotId = req.BotId
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := uow.BannerRepository().Update(ctx, banner); err != nil {
		return nil, err
	}

	res := toBannerResponse(banner)
	return &res, nil
}

func (s *bannerService) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	banner, err := uow.BannerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if banner == nil {
		return errors.New("banner not found")
	}

	return uow.BannerRepository().Delete(ctx, id)
}

func (s *bannerService) ActiveBannersForBot(ctx context.Context, shareToken string) ([]dto.BannerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tester, err := resolveTester(ctx, uow, shareToken)
	if err != nil {
		return nil, err
	}

	banners, err := uow.BannerRepository().FindAll(ctx,
		specification.ActiveBannersForBot{BotID: tester.BotId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.BannerResponse, 0, len(banners))
	for _, b := range banners {
		res = append(res, toBannerResponse(b))
	}
	return res, nil
}

func toBannerResponse(b *entity.Banner) dto.BannerResponse {
	return dto.BannerResponse{
		Id:          b.Id,
		Title:       b.Title,
		Content:     b.Content,
		BotId:       b.BotId,
		IsActive:    b.IsActive,
		CreatedById: b.CreatedById,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
