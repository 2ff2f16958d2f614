package mapper

import (
	"octobot-be/internal/entity"
	"octobot-be/internal/model"
)

type ClientNoteMapper struct{}

func NewClientNoteMapper() *ClientNoteMapper {
	return &ClientNoteMapper{}
}

func (m *ClientNoteMapper) ToEntity(n *model.ClientNote) *entity.ClientNote {
	if n == nil {
		return nil
	}
	return &entity.ClientNote{
		Id:             n.Id,
		ClientTesterId: n.ClientTesterId,
		Content:        n.Content,
		CreatedById:    n.CreatedById,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      updatedAtPtr(n.UpdatedAt),
	}
}

func (m *ClientNoteMapper) ToModel(n *entity.ClientNote) *model.ClientNote {
	if n == nil {
		return nil
	}
	return &model.ClientNote{
		Id:             n.Id,
		ClientTesterId: n.ClientTesterId,
		Content:        n.Content,
		CreatedById:    n.CreatedById,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      derefTime(n.UpdatedAt),
	}
}

func (m *ClientNoteMapper) ToEntities(notes []*model.ClientNote) []*entity.ClientNote {
	entities := make([]*entity.ClientNote, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
