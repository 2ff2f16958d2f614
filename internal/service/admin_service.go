package service

import (
	"context"
	"errors"
	"time"

	"octobot-be/internal/dto"
	"octobot-be/internal/entity"
	"octobot-be/internal/repository/specification"
	"octobot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAdminService interface {
	ListAdmins(ctx context.Context) ([]dto.AdminResponse, error)
	CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.AdminResponse, error)
	DeleteAdmin(ctx context.Context, id, actorId uuid.UUID) error
	UpdateAdminPassword(ctx context.Context, req *dto.UpdateAdminPasswordRequest) error
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
	}
}

func (s *adminService) ListAdmins(ctx context.Context) ([]dto.AdminResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx,
		specification.ByRole{Role: string(entity.UserRoleAdmin)},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.AdminResponse, 0, len(users))
	for _, u := range users {
		res = append(res, toAdminResponse(u))
	}
	return res, nil
}

func (s *adminService) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.AdminResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: &hashStr,
		Role:         entity.UserRoleAdmin,
		CreatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	res := toAdminResponse(user)
	return &res, nil
}

func (s *adminService) DeleteAdmin(ctx context.Context, id, actorId uuid.UUID) error {
	if id == actorId {
		return errors.New("cannot delete your own account")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("admin not found")
	}

	return uow.UserRepository().Delete(ctx, id)
}

func (s *adminService) UpdateAdminPassword(ctx context.Context, req *dto.UpdateAdminPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("admin not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hashStr := string(hash)
	user.PasswordHash = &hashStr

	return uow.UserRepository().Update(ctx, user)
}
