package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/docspot/booking-api/internal/model"
	"github.com/docspot/booking-api/internal/repository"
	"github.com/docspot/booking-api/pkg/auth"
	apperrors "github.com/docspot/booking-api/pkg/errors"
	"github.com/docspot/booking-api/pkg/security"
)

type Service struct {
	users  repository.UserRepository
	jwtSvc auth.JWTService
	hasher security.PasswordHasher
}

func NewService(users repository.UserRepository, jwtSvc auth.JWTService, hasher security.PasswordHasher) *Service {
	return &Service{
		users:  users,
		jwtSvc: jwtSvc,
		hasher: hasher,
	}
}

func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Internal(err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("email already registered")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to hash password: %w", err))
	}

	role := model.RolePatient
	if req.Type == "admin" {
		role = model.RoleAdmin
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to create user: %w", err))
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.BadRequest("invalid credentials")
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, apperrors.BadRequest("invalid credentials")
	}

	token, err := s.jwtSvc.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to generate token: %w", err))
	}

	return &model.LoginResponse{
		Token: token,
		User:  user.Info(),
	}, nil
}
