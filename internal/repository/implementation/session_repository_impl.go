package implementation

import (
	"context"
	"errors"
	"time"

	"octobot-be/internal/entity"
	"octobot-be/internal/mapper"
	"octobot-be/internal/model"
	"octobot-be/internal/repository/contract"
	"octobot-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewSessionRepository(db *gorm.DB) contract.SessionRepository {
	return &SessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *SessionRepositoryImpl) Create(ctx context.Context, session *entity.TestSession) error {
	m := r.mapper.SessionToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.SessionToEntity(m)
	return nil
}

func (r *SessionRepositoryImpl) Update(ctx context.Context, session *entity.TestSession) error {
	m := r.mapper.SessionToModel(session)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.SessionToEntity(m)
	return nil
}

func (r *SessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TestSession, error) {
	var m model.TestSession
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SessionToEntity(&m), nil
}

func (r *SessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TestSession, error) {
	var models []*model.TestSession
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.SessionsToEntities(models), nil
}

func (r *SessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.TestSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SessionRepositoryImpl) TouchLastSeen(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.TestSession{}).
		Where("id = ?", id).
		Update("last_seen_at", time.Now()).Error
}

func (r *SessionRepositoryImpl) SubmittedRatings(ctx context.Context, botId uuid.UUID) ([]int, error) {
	var ratings []int
	err := r.db.WithContext(ctx).
		Model(&model.TestSession{}).
		Where("bot_id = ? AND review_submitted = ? AND review_rating IS NOT NULL", botId, true).
		Pluck("review_rating", &ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
