package mapper

import (
	"octobot-be/internal/entity"
	"octobot-be/internal/model"
)

type BotMapper struct{}

func NewBotMapper() *BotMapper {
	return &BotMapper{}
}

func (m *BotMapper) ToEntity(b *model.Bot) *entity.Bot {
	if b == nil {
		return nil
	}
	return &entity.Bot{
		Id:           b.Id,
		Name:         b.Name,
		ClientName:   b.ClientName,
		BrandLogoUrl: b.BrandLogoUrl,
		RelayApiUrl:  b.RelayApiUrl,
		RelayApiKey:  b.RelayApiKey,
		FirstMessage: b.FirstMessage,
		// Normalized here so legacy rows never leak the retired values.
		Status:      entity.NormalizeBotStatus(b.Status),
		CreatedById: b.CreatedById,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   updatedAtPtr(b.UpdatedAt),
	}
}

func (m *BotMapper) ToModel(b *entity.Bot) *model.Bot {
	if b == nil {
		return nil
	}
	return &model.Bot{
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
		UpdatedAt:    derefTime(b.UpdatedAt),
	}
}

func (m *BotMapper) ToEntities(bots []*model.Bot) []*entity.Bot {
	entities := make([]*entity.Bot, len(bots))
	for i, b := range bots {
		entities[i] = m.ToEntity(b)
	}
	return entities
}
