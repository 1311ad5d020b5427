package auth

import (
	"context"
	"errors"

	"gymdesk/internal/domain"
	jwtsvc "gymdesk/internal/pkg/jwt"
	"gymdesk/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	users UserRepository
	jwt   *jwtsvc.Service
}

func NewService(users UserRepository, jwt *jwtsvc.Service) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.OrganizationID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		User: UserInfo{
			ID:             user.ID,
			OrganizationID: user.OrganizationID,
			Email:          user.Email,
			Name:           user.Name,
			Role:           string(user.Role),
		},
	}, nil
}

// RegisterStaff creates a staff account inside the caller's organization.
// Only admins reach this (enforced by middleware).
func (s *Service) RegisterStaff(ctx context.Context, orgID int64, req RegisterStaffRequest) (*domain.User, error) {
	role := domain.Role(req.Role)
	switch role {
	case domain.RoleAdmin, domain.RoleManager, domain.RoleTrainer:
	default:
		return nil, ErrInvalidRole
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		OrganizationID: orgID,
		Email:          req.Email,
		PasswordHash:   string(hash),
		Name:           req.Name,
		Role:           role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
