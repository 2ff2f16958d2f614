package implementation

import (
	"context"
	"errors"

	"octobot-be/internal/entity"
	"octobot-be/internal/mapper"
	"octobot-be/internal/model"
	"octobot-be/internal/repository/contract"
	"octobot-be/internal/repository/scope"
	"octobot-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TesterRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TesterMapper
}

func NewTesterRepository(db *gorm.DB) contract.TesterRepository {
	return &TesterRepositoryImpl{
		db:     db,
		mapper: mapper.NewTesterMapper(),
	}
}

func (r *TesterRepositoryImpl) Create(ctx context.Context, tester *entity.ClientTester) error {
	m := r.mapper.ToModel(tester)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tester = *r.mapper.ToEntity(m)
	return nil
}

func (r *TesterRepositoryImpl) Update(ctx context.Context, tester *entity.ClientTester) error {
	m := r.mapper.ToModel(tester)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*tester = *r.mapper.ToEntity(m)
	return nil
}

func (r *TesterRepositoryImpl) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ClientTester{}, id).Error
}

func (r *TesterRepositoryImpl) Restore(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Model(&model.ClientTester{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

func (r *TesterRepositoryImpl) HardDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&model.ClientTester{}, id).Error
}

func (r *TesterRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ClientTester, error) {
	var m model.ClientTester
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TesterRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClientTester, error) {
	var models []*model.ClientTester
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TesterRepositoryImpl) FindDeleted(ctx context.Context, specs ...specification.Specification) ([]*entity.ClientTester, error) {
	var models []*model.ClientTester
	query := applySpecifications(scope.OnlyDeleted(r.db.WithContext(ctx)), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TesterRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ClientTester{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
