package members

import (
	"context"
	"testing"

	"gymdesk/internal/domain"
	"gymdesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, mem *domain.Member) error {
	args := m.Called(ctx, mem)
	if mem != nil {
		mem.ID = 555 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockMemberRepository) GetByID(ctx context.Context, orgID, id int64) (*domain.Member, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ListByOrg(ctx context.Context, orgID int64, limit, offset int) ([]domain.Member, error) {
	args := m.Called(ctx, orgID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) Update(ctx context.Context, mem *domain.Member) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}

func (m *MockMemberRepository) UpdateStatus(ctx context.Context, orgID, id int64, status domain.MemberStatus) error {
	args := m.Called(ctx, orgID, id, status)
	return args.Error(0)
}

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) GetByID(ctx context.Context, orgID, id int64) (*domain.MembershipPlan, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MembershipPlan), args.Error(1)
}

func TestCreateMember_Success(t *testing.T) {
	mockMembers := new(MockMemberRepository)
	mockPlans := new(MockPlanRepository)
	service := NewService(mockMembers, mockPlans)

	planID := int64(3)
	mockPlans.On("GetByID", mock.Anything, int64(1), planID).Return(&domain.MembershipPlan{ID: planID}, nil)
	mockMembers.On("Create", mock.Anything, mock.Anything).Return(nil)

	m, err := service.Create(context.Background(), 1, CreateMemberRequest{
		Name:   "Maria Lopez",
		PlanID: &planID,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(555), m.ID)
	assert.Equal(t, domain.MemberActive, m.Status)
	assert.Equal(t, int64(1), m.OrganizationID)
}

func TestCreateMember_UnknownPlan(t *testing.T) {
	mockMembers := new(MockMemberRepository)
	mockPlans := new(MockPlanRepository)
	service := NewService(mockMembers, mockPlans)

	planID := int64(99)
	mockPlans.On("GetByID", mock.Anything, int64(1), planID).Return(nil, repository.ErrNotFound)

	_, err := service.Create(context.Background(), 1, CreateMemberRequest{
		Name:   "Maria Lopez",
		PlanID: &planID,
	})

	assert.ErrorIs(t, err, ErrPlanNotFound)
	mockMembers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestChangeStatus_CancelledIsTerminal(t *testing.T) {
	mockMembers := new(MockMemberRepository)
	mockPlans := new(MockPlanRepository)
	service := NewService(mockMembers, mockPlans)

	mockMembers.On("GetByID", mock.Anything, int64(1), int64(5)).Return(&domain.Member{
		ID:             5,
		OrganizationID: 1,
		Status:         domain.MemberCancelled,
	}, nil)

	_, err := service.ChangeStatus(context.Background(), 1, 5, "active")

	assert.ErrorIs(t, err, ErrInvalidTransition)
	mockMembers.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeStatus_InvalidStatus(t *testing.T) {
	mockMembers := new(MockMemberRepository)
	mockPlans := new(MockPlanRepository)
	service := NewService(mockMembers, mockPlans)

	_, err := service.ChangeStatus(context.Background(), 1, 5, "paused")

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestChangeStatus_FreezeActiveMember(t *testing.T) {
	mockMembers := new(MockMemberRepository)
	mockPlans := new(MockPlanRepository)
	service := NewService(mockMembers, mockPlans)

	mockMembers.On("GetByID", mock.Anything, int64(1), int64(5)).Return(&domain.Member{
		ID:             5,
		OrganizationID: 1,
		Status:         domain.MemberActive,
	}, nil).Once()
	mockMembers.On("UpdateStatus", mock.Anything, int64(1), int64(5), domain.MemberFrozen).Return(nil)
	mockMembers.On("GetByID", mock.Anything, int64(1), int64(5)).Return(&domain.Member{
		ID:             5,
		OrganizationID: 1,
		Status:         domain.MemberFrozen,
	}, nil).Once()

	m, err := service.ChangeStatus(context.Background(), 1, 5, "frozen")

	require.NoError(t, err)
	assert.Equal(t, domain.MemberFrozen, m.Status)
	mockMembers.AssertExpectations(t)
}

func TestList_ClampsLimit(t *testing.T) {
	mockMembers := new(MockMemberRepository)
	mockPlans := new(MockPlanRepository)
	service := NewService(mockMembers, mockPlans)

	mockMembers.On("ListByOrg", mock.Anything, int64(1), 200, 0).Return([]domain.Member{}, nil)

	_, err := service.List(context.Background(), 1, 1000, -5)

	require.NoError(t, err)
	mockMembers.AssertExpectations(t)
}
