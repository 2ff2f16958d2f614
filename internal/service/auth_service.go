package service

import (
	"context"
	"errors"
	"time"

	"octobot-be/internal/dto"
	"octobot-be/internal/entity"
	"octobot-be/internal/pkg/serverutils"
	"octobot-be/internal/repository/specification"
	"octobot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.AdminResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory) IAuthService {
	return &authService{
		uowFactory: uowFactory,
	}
}

const accessTokenExpiry = 24 * time.Hour

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if user == nil || user.PasswordHash == nil {
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	if user.Role != entity.UserRoleAdmin {
		return nil, errors.New("access denied: admins only")
	}

	signedToken, err := serverutils.GenerateAdminToken(user.Id, user.Email, int64(accessTokenExpiry.Seconds()))
	if err != nil {
		return nil, err
	}

	user.LastSignedIn = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: signedToken,
		User:  toAdminResponse(user),
	}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.AdminResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	res := toAdminResponse(user)
	return &res, nil
}

func toAdminResponse(user *entity.User) dto.AdminResponse {
	return dto.AdminResponse{
		Id:           user.Id,
		Email:        user.Email,
		Name:         user.Name,
		Role:         string(user.Role),
		LastSignedIn: user.LastSignedIn,
		CreatedAt:    user.CreatedAt,
	}
}
