package schedule

import (
	"context"
	"time"

	"gymdesk/internal/domain"
)

// TemplateRepository resolves the candidate templates for one organization.
type TemplateRepository interface {
	ListActive(ctx context.Context, orgID int64, ids []int64) ([]domain.ClassTemplate, error)
}

// InstanceStore persists generated class instances. The engine only ever
// inserts and lists; it never mutates an existing instance.
type InstanceStore interface {
	Create(ctx context.Context, i *domain.ClassInstance) error
	ListByOrg(ctx context.Context, orgID int64, from, to time.Time) ([]domain.ClassInstance, error)
}

// GenerationLedger is the idempotency source of truth. Record must report a
// (template, date) conflict as repository.ErrDuplicateGeneration.
type GenerationLedger interface {
	FindGenerated(ctx context.Context, templateID int64, dates []string) (map[string]bool, error)
	Record(ctx context.Context, e *domain.GenerationLogEntry) error
}

// OrganizationSettings looks up per-tenant configuration. An empty timezone
// means the organization has none configured.
type OrganizationSettings interface {
	GetTimezone(ctx context.Context, orgID int64) (string, error)
}

// CacheInvalidator drops cached schedule views after a successful apply.
type CacheInvalidator interface {
	InvalidateSchedule(ctx context.Context, orgID int64)
}
