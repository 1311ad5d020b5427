package billing

import (
	"context"
	"errors"
	"time"

	"gymdesk/internal/domain"
	"gymdesk/internal/repository"
)

type Service struct {
	plans    PlanRepository
	payments PaymentRepository
	members  MemberRepository
}

func NewService(plans PlanRepository, payments PaymentRepository, members MemberRepository) *Service {
	return &Service{plans: plans, payments: payments, members: members}
}

func (s *Service) CreatePlan(ctx context.Context, orgID int64, req CreatePlanRequest) (*domain.MembershipPlan, error) {
	period := domain.BillingPeriod(req.BillingPeriod)
	switch period {
	case domain.BillingMonthly, domain.BillingYearly:
	default:
		return nil, ErrValidation
	}

	p := &domain.MembershipPlan{
		OrganizationID: orgID,
		Name:           req.Name,
		Price:          req.Price,
		BillingPeriod:  period,
		IsActive:       true,
	}
	if err := s.plans.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListPlans(ctx context.Context, orgID int64, activeOnly bool) ([]domain.MembershipPlan, error) {
	return s.plans.ListByOrg(ctx, orgID, activeOnly)
}

func (s *Service) RecordPayment(ctx context.Context, orgID int64, req RecordPaymentRequest) (*domain.Payment, error) {
	method := domain.PaymentMethod(req.Method)
	switch method {
	case domain.PaymentCash, domain.PaymentCard, domain.PaymentTransfer:
	default:
		return nil, ErrValidation
	}

	if _, err := s.members.GetByID(ctx, orgID, req.MemberID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	if req.PlanID != nil {
		if _, err := s.plans.GetByID(ctx, orgID, *req.PlanID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrPlanNotFound
			}
			return nil, err
		}
	}

	paidAt := time.Now().UTC()
	if req.PaidAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.PaidAt)
		if err != nil {
			return nil, ErrValidation
		}
		paidAt = parsed
	}

	p := &domain.Payment{
		OrganizationID: orgID,
		MemberID:       req.MemberID,
		PlanID:         req.PlanID,
		Amount:         req.Amount,
		Method:         method,
		Notes:          req.Notes,
		PaidAt:         paidAt,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListMemberPayments(ctx context.Context, orgID, memberID int64) ([]domain.Payment, error) {
	if _, err := s.members.GetByID(ctx, orgID, memberID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return s.payments.ListByMember(ctx, orgID, memberID)
}
