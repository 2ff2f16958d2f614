package unitofwork

import (
	"context"

	"octobot-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	BotRepository() contract.BotRepository
	TesterRepository() contract.TesterRepository

	SessionRepository() contract.SessionRepository
	MessageRepository() contract.MessageRepository
	FeedbackRepository() contract.FeedbackRepository
	SessionNoteRepository() contract.SessionNoteRepository
	ClientNoteRepository() contract.ClientNoteRepository

	TeamRepository() contract.TeamRepository
	BannerRepository() contract.BannerRepository
}
