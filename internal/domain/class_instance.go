package domain

import "time"

// ClassInstance is one concrete, dated occurrence materialized from a
// ClassTemplate. The descriptive and policy fields are denormalized at
// generation time so later template edits do not rewrite history.
//
// The generation engine only ever inserts instances; booking and
// cancellation flows mutate them afterwards.
type ClassInstance struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	TemplateID     int64     `json:"template_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Capacity       int       `json:"capacity"`
	BookingOpensH  int       `json:"booking_opens_hours"`
	BookingClosesM int       `json:"booking_closes_mins"`
	TrainerID      *int64    `json:"trainer_id,omitempty"`
	Location       string    `json:"location,omitempty"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	IsCancelled    bool      `json:"is_cancelled"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
