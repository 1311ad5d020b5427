package domain

import "time"

// GenerationLogEntry records that a (template, calendar date) pair has been
// materialized. The unique index on (template_id, generated_date) is the
// engine's sole idempotency guarantee: concurrent runs race on the insert
// and the loser skips the slot.
//
// Entries are never updated or deleted by the engine.
type GenerationLogEntry struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	TemplateID     int64     `json:"template_id"`
	GeneratedDate  string    `json:"generated_date"` // "2006-01-02"
	InstanceID     int64     `json:"instance_id"`
	CreatedAt      time.Time `json:"created_at"`
}
