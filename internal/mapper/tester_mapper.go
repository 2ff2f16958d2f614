package mapper

import (
	"time"

	"octobot-be/internal/entity"
	"octobot-be/internal/model"

	"gorm.io/gorm"
)

type TesterMapper struct{}

func NewTesterMapper() *TesterMapper {
	return &TesterMapper{}
}

func (m *TesterMapper) ToEntity(t *model.ClientTester) *entity.ClientTester {
	if t == nil {
		return nil
	}
	var deletedAt *time.Time
	if t.DeletedAt.Valid {
		d := t.DeletedAt.Time
		deletedAt = &d
	}
	return &entity.ClientTester{
		Id:         t.Id,
		Name:       t.Name,
		Email:      t.Email,
		BotId:      t.BotId,
		ShareToken: t.ShareToken,
		IsActive:   t.IsActive,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  updatedAtPtr(t.UpdatedAt),
		DeletedAt:  deletedAt,
		IsDeleted:  t.DeletedAt.Valid,
	}
}

func (m *TesterMapper) ToModel(t *entity.ClientTester) *model.ClientTester {
	if t == nil {
		return nil
	}
	var deletedAt gorm.DeletedAt
	if t.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *t.DeletedAt, Valid: true}
	} else if t.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}
	return &model.ClientTester{
		Id:         t.Id,
		Name:       t.Name,
		Email:      t.Email,
		BotId:      t.BotId,
		ShareToken: t.ShareToken,
		IsActive:   t.IsActive,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  derefTime(t.UpdatedAt),
		DeletedAt:  deletedAt,
	}
}

func (m *TesterMapper) ToEntities(testers []*model.ClientTester) []*entity.ClientTester {
	entities := make([]*entity.ClientTester, len(testers))
	for i, t := range testers {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
