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

type SessionNoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewSessionNoteRepository(db *gorm.DB) contract.SessionNoteRepository {
	return &SessionNoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *SessionNoteRepositoryImpl) Upsert(ctx context.Context, sessionId uuid.UUID, content string) (*entity.SessionNote, error) {
	var m model.SessionNote
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionId).First(&m).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		m = model.SessionNote{Id: uuid.New(), SessionId: sessionId, Content: content}
		if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
			return nil, err
		}
		return r.mapper.SessionNoteToEntity(&m), nil
	}
	m.Content = content
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, err
	}
	return r.mapper.SessionNoteToEntity(&m), nil
}

func (r *SessionNoteRepositoryImpl) FindBySession(ctx context.Context, sessionId uuid.UUID) (*entity.SessionNote, error) {
	var m model.SessionNote
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SessionNoteToEntity(&m), nil
}

type ClientNoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ClientNoteMapper
}

func NewClientNoteRepository(db *gorm.DB) contract.ClientNoteRepository {
	return &ClientNoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewClientNoteMapper(),
	}
}

func (r *ClientNoteRepositoryImpl) Create(ctx context.Context, note *entity.ClientNote) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *ClientNoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ClientNote{}, id).Error
}

func (r *ClientNoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClientNote, error) {
	var models []*model.ClientNote
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
