package members

import (
	"context"

	"gymdesk/internal/domain"
)

type MemberRepository interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByID(ctx context.Context, orgID, id int64) (*domain.Member, error)
	ListByOrg(ctx context.Context, orgID int64, limit, offset int) ([]domain.Member, error)
	Update(ctx context.Context, m *domain.Member) error
	UpdateStatus(ctx context.Context, orgID, id int64, status domain.MemberStatus) error
}

type PlanRepository interface {
	GetByID(ctx context.Context, orgID, id int64) (*domain.MembershipPlan, error)
}
