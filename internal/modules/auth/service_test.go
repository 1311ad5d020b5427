package auth

import (
	"context"
	"testing"
	"time"

	"gymdesk/internal/domain"
	jwtsvc "gymdesk/internal/pkg/jwt"
	"gymdesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newTestAuthService(users UserRepository) *Service {
	return NewService(users, jwtsvc.New("test-secret", time.Hour))
}

func TestLogin_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := newTestAuthService(mockUsers)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	mockUsers.On("GetByEmail", mock.Anything, "staff@gym.example").Return(&domain.User{
		ID:             7,
		OrganizationID: 2,
		Email:          "staff@gym.example",
		PasswordHash:   string(hash),
		Role:           domain.RoleManager,
	}, nil)

	resp, err := service.Login(context.Background(), LoginRequest{
		Email:    "staff@gym.example",
		Password: "secret-pass",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(2), resp.User.OrganizationID)
	assert.Equal(t, "manager", resp.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := newTestAuthService(mockUsers)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	mockUsers.On("GetByEmail", mock.Anything, "staff@gym.example").Return(&domain.User{
		Email:        "staff@gym.example",
		PasswordHash: string(hash),
	}, nil)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "staff@gym.example",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := newTestAuthService(mockUsers)

	mockUsers.On("GetByEmail", mock.Anything, "ghost@gym.example").Return(nil, repository.ErrNotFound)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@gym.example",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterStaff_RejectsUnknownRole(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := newTestAuthService(mockUsers)

	_, err := service.RegisterStaff(context.Background(), 1, RegisterStaffRequest{
		Email:    "new@gym.example",
		Password: "password123",
		Name:     "New Staff",
		Role:     "janitor",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterStaff_EmailTaken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := newTestAuthService(mockUsers)

	mockUsers.On("GetByEmail", mock.Anything, "taken@gym.example").Return(&domain.User{ID: 1}, nil)

	_, err := service.RegisterStaff(context.Background(), 1, RegisterStaffRequest{
		Email:    "taken@gym.example",
		Password: "password123",
		Name:     "Dup",
		Role:     "trainer",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterStaff_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := newTestAuthService(mockUsers)

	mockUsers.On("GetByEmail", mock.Anything, "new@gym.example").Return(nil, repository.ErrNotFound)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := service.RegisterStaff(context.Background(), 3, RegisterStaffRequest{
		Email:    "new@gym.example",
		Password: "password123",
		Name:     "New Trainer",
		Role:     "trainer",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, int64(3), user.OrganizationID)
	assert.Equal(t, domain.RoleTrainer, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)
}
