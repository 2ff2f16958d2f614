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

type BotRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BotMapper
}

func NewBotRepository(db *gorm.DB) contract.BotRepository {
	return &BotRepositoryImpl{
		db:     db,
		mapper: mapper.NewBotMapper(),
	}
}

func (r *BotRepositoryImpl) Create(ctx context.Context, bot *entity.Bot) error {
	m := r.mapper.ToModel(bot)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*bot = *r.mapper.ToEntity(m)
	return nil
}

func (r *BotRepositoryImpl) Update(ctx context.Context, bot *entity.Bot) error {
	m := r.mapper.ToModel(bot)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*bot = *r.mapper.ToEntity(m)
	return nil
}

func (r *BotRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	// No cascade: testers, sessions and messages outlive the bot on purpose.
	return r.db.WithContext(ctx).Delete(&model.Bot{}, id).Error
}

func (r *BotRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bot, error) {
	var m model.Bot
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BotRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bot, error) {
	var models []*model.Bot
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *BotRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Bot{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BotRepositoryImpl) CountByRawStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Cnt    int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Bot{}).
		Select("status, COUNT(*) AS cnt").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Cnt
	}
	return counts, nil
}
