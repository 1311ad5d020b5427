package domain

import "time"

// ClassTemplate is a weekly recurring pattern from which dated class
// instances are generated. Weekday follows time.Weekday numbering:
// 0 = Sunday .. 6 = Saturday. StartTime/EndTime are "HH:MM" wall-clock
// strings interpreted in the organization's timezone.
//
// Capacity and the booking offsets are policy fields: the generation engine
// copies them onto every instance verbatim and never interprets them.
type ClassTemplate struct {
	ID             int64  `json:"id"`
	OrganizationID int64  `json:"organization_id" validate:"required"`
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description,omitempty"`
	Weekday        int    `json:"weekday" validate:"gte=0,lte=6"`
	StartTime      string `json:"start_time" validate:"required"` // "HH:MM", < EndTime
	EndTime        string `json:"end_time" validate:"required"`
	Capacity       int    `json:"capacity" validate:"gte=0"`
	BookingOpensH  int    `json:"booking_opens_hours"`  // hours before start
	BookingClosesM int    `json:"booking_closes_mins"`  // minutes before start
	TrainerID      *int64 `json:"trainer_id,omitempty"` // staff user
	Location       string `json:"location,omitempty"`
	IsActive       bool   `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
