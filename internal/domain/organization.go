package domain

import "time"

// Organization is the tenancy boundary. Every other entity carries its ID
// and no query may cross it.
type Organization struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Timezone  string    `json:"timezone,omitempty"` // IANA identifier, empty = server default
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
