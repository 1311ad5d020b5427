package repository

import (
	"context"
	"errors"
	"time"

	"gymdesk/internal/domain"

	"gorm.io/gorm"
)

type ClassTemplateRepository struct {
	db *gorm.DB
}

func NewClassTemplateRepository(db *gorm.DB) *ClassTemplateRepository {
	return &ClassTemplateRepository{db: db}
}

type classTemplateModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	OrganizationID int64     `gorm:"column:organization_id;index"`
	Title          string    `gorm:"column:title"`
	Description    string    `gorm:"column:description"`
	Weekday        int       `gorm:"column:weekday"`
	StartTime      string    `gorm:"column:start_time"`
	EndTime        string    `gorm:"column:end_time"`
	Capacity       int       `gorm:"column:capacity"`
	BookingOpensH  int       `gorm:"column:booking_opens_hours"`
	BookingClosesM int       `gorm:"column:booking_closes_mins"`
	TrainerID      *int64    `gorm:"column:trainer_id"`
	Location       string    `gorm:"column:location"`
	IsActive       bool      `gorm:"column:is_active"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (classTemplateModel) TableName() string { return "class_templates" }

func toDomainTemplate(m classTemplateModel) domain.ClassTemplate {
	return domain.ClassTemplate{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		Title:          m.Title,
		Description:    m.Description,
		Weekday:        m.Weekday,
		StartTime:      m.StartTime,
		EndTime:        m.EndTime,
		Capacity:       m.Capacity,
		BookingOpensH:  m.BookingOpensH,
		BookingClosesM: m.BookingClosesM,
		TrainerID:      m.TrainerID,
		Location:       m.Location,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toTemplateModel(t *domain.ClassTemplate) classTemplateModel {
	return classTemplateModel{
		ID:             t.ID,
		OrganizationID: t.OrganizationID,
		Title:          t.Title,
		Description:    t.Description,
		Weekday:        t.Weekday,
		StartTime:      t.StartTime,
		EndTime:        t.EndTime,
		Capacity:       t.Capacity,
		BookingOpensH:  t.BookingOpensH,
		BookingClosesM: t.BookingClosesM,
		TrainerID:      t.TrainerID,
		Location:       t.Location,
		IsActive:       t.IsActive,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (r *ClassTemplateRepository) Create(ctx context.Context, t *domain.ClassTemplate) error {
	m := toTemplateModel(t)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*t = toDomainTemplate(m)
	return nil
}

func (r *ClassTemplateRepository) GetByID(ctx context.Context, orgID, id int64) (*domain.ClassTemplate, error) {
	var m classTemplateModel
	tx := r.db.WithContext(ctx).
		Where("organization_id = ? AND id = ?", orgID, id).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	t := toDomainTemplate(m)
	return &t, nil
}

// ListActive returns the organization's active templates, optionally
// narrowed to an explicit id subset. An empty result is not an error.
func (r *ClassTemplateRepository) ListActive(ctx context.Context, orgID int64, ids []int64) ([]domain.ClassTemplate, error) {
	q := r.db.WithContext(ctx).
		Where("organization_id = ? AND is_active = ?", orgID, true)
	if len(ids) > 0 {
		q = q.Where("id IN ?", ids)
	}

	var rows []classTemplateModel
	if tx := q.Order("id").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.ClassTemplate, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainTemplate(m))
	}
	return out, nil
}
