package unitofwork

import (
	"context"
	"fmt"

	"octobot-be/internal/repository/contract"
	"octobot-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil when none is open
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BotRepository() contract.BotRepository {
	return implementation.NewBotRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TesterRepository() contract.TesterRepository {
	return implementation.NewTesterRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SessionRepository() contract.SessionRepository {
	return implementation.NewSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MessageRepository() contract.MessageRepository {
	return implementation.NewMessageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FeedbackRepository() contract.FeedbackRepository {
	return implementation.NewFeedbackRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SessionNoteRepository() contract.SessionNoteRepository {
	return implementation.NewSessionNoteRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ClientNoteRepository() contract.ClientNoteRepository {
	return implementation.NewClientNoteRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TeamRepository() contract.TeamRepository {
	return implementation.NewTeamRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BannerRepository() contract.BannerRepository {
	return implementation.NewBannerRepository(u.getDB())
}
