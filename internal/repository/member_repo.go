package repository

import (
	"context"
	"errors"
	"time"

	"gymdesk/internal/domain"

	"gorm.io/gorm"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

type memberModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	OrganizationID int64     `gorm:"column:organization_id;index"`
	Name           string    `gorm:"column:name"`
	Email          string    `gorm:"column:email"`
	Phone          string    `gorm:"column:phone"`
	Status         string    `gorm:"column:status"`
	PlanID         *int64    `gorm:"column:plan_id"`
	JoinedAt       time.Time `gorm:"column:joined_at"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (memberModel) TableName() string { return "members" }

func toDomainMember(m memberModel) domain.Member {
	return domain.Member{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		Status:         domain.MemberStatus(m.Status),
		PlanID:         m.PlanID,
		JoinedAt:       m.JoinedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r *MemberRepository) Create(ctx context.Context, mem *domain.Member) error {
	m := memberModel{
		OrganizationID: mem.OrganizationID,
		Name:           mem.Name,
		Email:          mem.Email,
		Phone:          mem.Phone,
		Status:         string(mem.Status),
		PlanID:         mem.PlanID,
		JoinedAt:       mem.JoinedAt,
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*mem = toDomainMember(m)
	return nil
}

func (r *MemberRepository) GetByID(ctx context.Context, orgID, id int64) (*domain.Member, error) {
	var m memberModel
	tx := r.db.WithContext(ctx).
		Where("organization_id = ? AND id = ?", orgID, id).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	mem := toDomainMember(m)
	return &mem, nil
}

func (r *MemberRepository) ListByOrg(ctx context.Context, orgID int64, limit, offset int) ([]domain.Member, error) {
	var rows []memberModel
	tx := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Member, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainMember(m))
	}
	return out, nil
}

func (r *MemberRepository) Update(ctx context.Context, mem *domain.Member) error {
	tx := r.db.WithContext(ctx).
		Model(&memberModel{}).
		Where("organization_id = ? AND id = ?", mem.OrganizationID, mem.ID).
		Updates(map[string]any{
			"name":    mem.Name,
			"email":   mem.Email,
			"phone":   mem.Phone,
			"plan_id": mem.PlanID,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MemberRepository) UpdateStatus(ctx context.Context, orgID, id int64, status domain.MemberStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&memberModel{}).
		Where("organization_id = ? AND id = ?", orgID, id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
