package repository

import (
	"context"
	"time"

	"gymdesk/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	OrganizationID int64     `gorm:"column:organization_id;index"`
	MemberID       int64     `gorm:"column:member_id;index"`
	PlanID         *int64    `gorm:"column:plan_id"`
	Amount         float64   `gorm:"column:amount"`
	Method         string    `gorm:"column:method"`
	Notes          string    `gorm:"column:notes"`
	PaidAt         time.Time `gorm:"column:paid_at"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) domain.Payment {
	return domain.Payment{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		MemberID:       m.MemberID,
		PlanID:         m.PlanID,
		Amount:         m.Amount,
		Method:         domain.PaymentMethod(m.Method),
		Notes:          m.Notes,
		PaidAt:         m.PaidAt,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	m := paymentModel{
		OrganizationID: p.OrganizationID,
		MemberID:       p.MemberID,
		PlanID:         p.PlanID,
		Amount:         p.Amount,
		Method:         string(p.Method),
		Notes:          p.Notes,
		PaidAt:         p.PaidAt,
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*p = toDomainPayment(m)
	return nil
}

func (r *PaymentRepository) ListByMember(ctx context.Context, orgID, memberID int64) ([]domain.Payment, error) {
	var rows []paymentModel
	tx := r.db.WithContext(ctx).
		Where("organization_id = ? AND member_id = ?", orgID, memberID).
		Order("paid_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainPayment(m))
	}
	return out, nil
}
