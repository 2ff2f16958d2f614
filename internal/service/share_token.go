package service

import (
	"context"
	"errors"

	"octobot-be/internal/entity"
	"octobot-be/internal/repository/specification"
	"octobot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// ErrInvalidShareLink covers every share-token failure mode. The public
// surface never reveals whether a token is unknown, revoked or deleted.
var ErrInvalidShareLink = errors.New("invalid share link")

// resolveTester turns a share token into the tester it belongs to.
// Inactive and soft-deleted testers resolve to nothing.
func resolveTester(ctx context.Context, uow unitofwork.UnitOfWork, shareToken string) (*entity.ClientTester, error) {
	if shareToken == "" {
		return nil, ErrInvalidShareLink
	}

	tester, err := uow.TesterRepository().FindOne(ctx, specification.ByShareToken{Token: shareToken})
	if err != nil {
		return nil, err
	}
	if tester == nil || !tester.IsActive {
		return nil, ErrInvalidShareLink
	}
	return tester, nil
}

// resolveOwnedSession resolves the tester and verifies the session
// belongs to them. Cross-tester access through a valid but unrelated
// share token is rejected.
func resolveOwnedSession(ctx context.Context, uow unitofwork.UnitOfWork, shareToken string, sessionId uuid.UUID) (*entity.ClientTester, *entity.TestSession, error) {
	tester, err := resolveTester(ctx, uow, shareToken)
	if err != nil {
		return nil, nil, err
	}

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, nil, err
	}
	if session == nil || session.ClientTesterId != tester.Id {
		return nil, nil, errors.New("unauthorized")
	}
	return tester, session, nil
}
