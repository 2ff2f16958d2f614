package implementation

import (
	"context"
	"errors"

	"octobot-be/internal/entity"
	"octobot-be/internal/mapper"
	"octobot-be/internal/model"
	"octobot-be/internal/repository/contract"
	"octobot-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BannerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BannerMapper
}

func NewBannerRepository(db *gorm.DB) contract.BannerRepository {
	return &BannerRepositoryImpl{
		db:     db,
		mapper: mapper.NewBannerMapper(),
	}
}

func (r *BannerRepositoryImpl) Create(ctx context.Context, banner *entity.Banner) error {
	m := r.mapper.ToModel(banner)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*banner = *r.mapper.ToEntity(m)
	return nil
}

func (r *BannerRepositoryImpl) Update(ctx context.Context, banner *entity.Banner) error {
	m := r.mapper.ToModel(banner)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*banner = *r.mapper.ToEntity(m)
	return nil
}

func (r *BannerRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Banner{}, id).Error
}

func (r *BannerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Banner, error) {
	var m model.Banner
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BannerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Banner, error) {
	var models []*model.Banner
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
