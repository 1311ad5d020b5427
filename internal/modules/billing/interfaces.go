package billing

import (
	"context"

	"gymdesk/internal/domain"
)

type PlanRepository interface {
	Create(ctx context.Context, p *domain.MembershipPlan) error
	GetByID(ctx context.Context, orgID, id int64) (*domain.MembershipPlan, error)
	ListByOrg(ctx context.Context, orgID int64, activeOnly bool) ([]domain.MembershipPlan, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	ListByMember(ctx context.Context, orgID, memberID int64) ([]domain.Payment, error)
}

type MemberRepository interface {
	GetByID(ctx context.Context, orgID, id int64) (*domain.Member, error)
}
