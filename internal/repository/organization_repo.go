package repository

import (
	"context"
	"errors"
	"time"

	"gymdesk/internal/domain"

	"gorm.io/gorm"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

type organizationModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Timezone  string    `gorm:"column:timezone"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (organizationModel) TableName() string { return "organizations" }

func (r *OrganizationRepository) Create(ctx context.Context, o *domain.Organization) error {
	m := organizationModel{ID: o.ID, Name: o.Name, Timezone: o.Timezone}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	o.ID = m.ID
	o.CreatedAt = m.CreatedAt
	o.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	var m organizationModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return &domain.Organization{
		ID:        m.ID,
		Name:      m.Name,
		Timezone:  m.Timezone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// GetTimezone returns the organization's IANA timezone identifier, or the
// empty string when none is configured.
func (r *OrganizationRepository) GetTimezone(ctx context.Context, id int64) (string, error) {
	var m organizationModel
	tx := r.db.WithContext(ctx).Select("id", "timezone").First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", tx.Error
	}
	return m.Timezone, nil
}
