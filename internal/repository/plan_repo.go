package repository

import (
	"context"
	"errors"
	"time"

	"gymdesk/internal/domain"

	"gorm.io/gorm"
)

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

type planModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	OrganizationID int64     `gorm:"column:organization_id;index"`
	Name           string    `gorm:"column:name"`
	Price          float64   `gorm:"column:price"`
	BillingPeriod  string    `gorm:"column:billing_period"`
	IsActive       bool      `gorm:"column:is_active"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (planModel) TableName() string { return "membership_plans" }

func toDomainPlan(m planModel) domain.MembershipPlan {
	return domain.MembershipPlan{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Price:          m.Price,
		BillingPeriod:  domain.BillingPeriod(m.BillingPeriod),
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r *PlanRepository) Create(ctx context.Context, p *domain.MembershipPlan) error {
	m := planModel{
		OrganizationID: p.OrganizationID,
		Name:           p.Name,
		Price:          p.Price,
		BillingPeriod:  string(p.BillingPeriod),
		IsActive:       p.IsActive,
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*p = toDomainPlan(m)
	return nil
}

func (r *PlanRepository) GetByID(ctx context.Context, orgID, id int64) (*domain.MembershipPlan, error) {
	var m planModel
	tx := r.db.WithContext(ctx).
		Where("organization_id = ? AND id = ?", orgID, id).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	p := toDomainPlan(m)
	return &p, nil
}

func (r *PlanRepository) ListByOrg(ctx context.Context, orgID int64, activeOnly bool) ([]domain.MembershipPlan, error) {
	q := r.db.WithContext(ctx).Where("organization_id = ?", orgID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var rows []planModel
	if tx := q.Order("id").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.MembershipPlan, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainPlan(m))
	}
	return out, nil
}
