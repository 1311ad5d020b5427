package domain

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleTrainer Role = "trainer"
)

// User is a staff account. Gym members are a separate entity (Member) and
// never log in through this service.
type User struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id" validate:"required"`
	Email          string    `json:"email" validate:"required,email"`
	PasswordHash   string    `json:"-"`
	Name           string    `json:"name"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
