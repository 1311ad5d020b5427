package repository

import (
	"context"
	"time"

	"gymdesk/internal/domain"

	"gorm.io/gorm"
)

// GenerationLogRepository persists the (template, date) idempotency ledger.
// Correctness rests on the unique index over (template_id, generated_date):
// concurrent runs both reach Create and exactly one wins. Application-level
// check-then-write alone would be racy.
type GenerationLogRepository struct {
	db *gorm.DB
}

func NewGenerationLogRepository(db *gorm.DB) *GenerationLogRepository {
	return &GenerationLogRepository{db: db}
}

type generationLogModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	OrganizationID int64     `gorm:"column:organization_id;index"`
	TemplateID     int64     `gorm:"column:template_id;uniqueIndex:idx_generation_template_date"`
	GeneratedDate  string    `gorm:"column:generated_date;uniqueIndex:idx_generation_template_date"`
	InstanceID     int64     `gorm:"column:instance_id"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (generationLogModel) TableName() string { return "class_generation_log" }

// FindGenerated returns the subset of candidate dates that already have a
// ledger row for the template.
func (r *GenerationLogRepository) FindGenerated(ctx context.Context, templateID int64, dates []string) (map[string]bool, error) {
	generated := make(map[string]bool, len(dates))
	if len(dates) == 0 {
		return generated, nil
	}

	var rows []generationLogModel
	tx := r.db.WithContext(ctx).
		Where("template_id = ? AND generated_date IN ?", templateID, dates).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	for _, m := range rows {
		generated[m.GeneratedDate] = true
	}
	return generated, nil
}

// Record inserts a ledger row. A unique-index conflict is reported as
// ErrDuplicateGeneration so the caller can treat the slot as already
// handled by a concurrent run.
func (r *GenerationLogRepository) Record(ctx context.Context, e *domain.GenerationLogEntry) error {
	m := generationLogModel{
		OrganizationID: e.OrganizationID,
		TemplateID:     e.TemplateID,
		GeneratedDate:  e.GeneratedDate,
		InstanceID:     e.InstanceID,
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return ErrDuplicateGeneration
		}
		return tx.Error
	}
	e.ID = m.ID
	e.CreatedAt = m.CreatedAt
	return nil
}
