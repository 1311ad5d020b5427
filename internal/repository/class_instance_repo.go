package repository

import (
	"context"
	"time"

	"gymdesk/internal/domain"

	"gorm.io/gorm"
)

type ClassInstanceRepository struct {
	db *gorm.DB
}

func NewClassInstanceRepository(db *gorm.DB) *ClassInstanceRepository {
	return &ClassInstanceRepository{db: db}
}

type classInstanceModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	OrganizationID int64     `gorm:"column:organization_id;index"`
	TemplateID     int64     `gorm:"column:template_id;index"`
	Title          string    `gorm:"column:title"`
	Description    string    `gorm:"column:description"`
	Capacity       int       `gorm:"column:capacity"`
	BookingOpensH  int       `gorm:"column:booking_opens_hours"`
	BookingClosesM int       `gorm:"column:booking_closes_mins"`
	TrainerID      *int64    `gorm:"column:trainer_id"`
	Location       string    `gorm:"column:location"`
	StartsAt       time.Time `gorm:"column:starts_at;index"`
	EndsAt         time.Time `gorm:"column:ends_at"`
	IsCancelled    bool      `gorm:"column:is_cancelled"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (classInstanceModel) TableName() string { return "class_instances" }

func toDomainInstance(m classInstanceModel) domain.ClassInstance {
	return domain.ClassInstance{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		TemplateID:     m.TemplateID,
		Title:          m.Title,
		Description:    m.Description,
		Capacity:       m.Capacity,
		BookingOpensH:  m.BookingOpensH,
		BookingClosesM: m.BookingClosesM,
		TrainerID:      m.TrainerID,
		Location:       m.Location,
		StartsAt:       m.StartsAt,
		EndsAt:         m.EndsAt,
		IsCancelled:    m.IsCancelled,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toInstanceModel(i *domain.ClassInstance) classInstanceModel {
	return classInstanceModel{
		ID:             i.ID,
		OrganizationID: i.OrganizationID,
		TemplateID:     i.TemplateID,
		Title:          i.Title,
		Description:    i.Description,
		Capacity:       i.Capacity,
		BookingOpensH:  i.BookingOpensH,
		BookingClosesM: i.BookingClosesM,
		TrainerID:      i.TrainerID,
		Location:       i.Location,
		StartsAt:       i.StartsAt,
		EndsAt:         i.EndsAt,
		IsCancelled:    i.IsCancelled,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

func (r *ClassInstanceRepository) Create(ctx context.Context, i *domain.ClassInstance) error {
	m := toInstanceModel(i)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*i = toDomainInstance(m)
	return nil
}

func (r *ClassInstanceRepository) ListByOrg(ctx context.Context, orgID int64, from, to time.Time) ([]domain.ClassInstance, error) {
	var rows []classInstanceModel
	tx := r.db.WithContext(ctx).
		Where("organization_id = ? AND starts_at >= ? AND starts_at < ?", orgID, from, to).
		Order("starts_at").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.ClassInstance, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainInstance(m))
	}
	return out, nil
}

func (r *ClassInstanceRepository) CountByTemplate(ctx context.Context, orgID, templateID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&classInstanceModel{}).
		Where("organization_id = ? AND template_id = ?", orgID, templateID).
		Count(&cnt)
	return cnt, tx.Error
}
