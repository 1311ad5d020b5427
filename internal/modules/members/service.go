package members

import (
	"context"
	"errors"
	"time"

	"gymdesk/internal/domain"
	"gymdesk/internal/repository"
)

type Service struct {
	members MemberRepository
	plans   PlanRepository
}

func NewService(members MemberRepository, plans PlanRepository) *Service {
	return &Service{members: members, plans: plans}
}

func (s *Service) Create(ctx context.Context, orgID int64, req CreateMemberRequest) (*domain.Member, error) {
	if req.PlanID != nil {
		if err := s.checkPlan(ctx, orgID, *req.PlanID); err != nil {
			return nil, err
		}
	}

	m := &domain.Member{
		OrganizationID: orgID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Status:         domain.MemberActive,
		PlanID:         req.PlanID,
		JoinedAt:       time.Now().UTC(),
	}
	if err := s.members.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Get(ctx context.Context, orgID, id int64) (*domain.Member, error) {
	m, err := s.members.GetByID(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, orgID int64, limit, offset int) ([]domain.Member, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	return s.members.ListByOrg(ctx, orgID, limit, offset)
}

func (s *Service) Update(ctx context.Context, orgID, id int64, req UpdateMemberRequest) (*domain.Member, error) {
	if req.PlanID != nil {
		if err := s.checkPlan(ctx, orgID, *req.PlanID); err != nil {
			return nil, err
		}
	}

	m := &domain.Member{
		ID:             id,
		OrganizationID: orgID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		PlanID:         req.PlanID,
	}
	if err := s.members.Update(ctx, m); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, orgID, id)
}

// ChangeStatus applies a membership transition. Cancelled is terminal;
// everything else moves freely between active and frozen.
func (s *Service) ChangeStatus(ctx context.Context, orgID, id int64, status string) (*domain.Member, error) {
	next := domain.MemberStatus(status)
	switch next {
	case domain.MemberActive, domain.MemberFrozen, domain.MemberCancelled:
	default:
		return nil, ErrInvalidStatus
	}

	current, err := s.Get(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.MemberCancelled {
		return nil, ErrInvalidTransition
	}

	if err := s.members.UpdateStatus(ctx, orgID, id, next); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, orgID, id)
}

func (s *Service) checkPlan(ctx context.Context, orgID, planID int64) error {
	if _, err := s.plans.GetByID(ctx, orgID, planID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}
