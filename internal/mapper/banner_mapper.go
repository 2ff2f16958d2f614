package mapper

import (
	"octobot-be/internal/entity"
	"octobot-be/internal/model"
)

type BannerMapper struct{}

func NewBannerMapper() *BannerMapper {
	return &BannerMapper{}
}

func (m *BannerMapper) ToEntity(b *model.Banner) *entity.Banner {
	if b == nil {
		return nil
	}
	return &entity.Banner{
		Id:          b.Id,
		Title:       b.Title,
		Content:     b.Content,
		BotId:       b.BotId,
		IsActive:    b.IsActive,
		CreatedById: b.CreatedById,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   updatedAtPtr(b.UpdatedAt),
	}
}

func (m *BannerMapper) ToModel(b *entity.Banner) *model.Banner {
	if b == nil {
		return nil
	}
	return &model.Banner{
		Id:          b.Id,
		Title:       b.Title,
		Content:     b.Content,
		BotId:       b.BotId,
		IsActive:    b.IsActive,
		CreatedById: b.CreatedById,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   derefTime(b.UpdatedAt),
	}
}

func (m *BannerMapper) ToEntities(banners []*model.Banner) []*entity.Banner {
	entities := make([]*entity.Banner, len(banners))
	for i, b := range banners {
		entities[i] = m.ToEntity(b)
	}
	return entities
}
