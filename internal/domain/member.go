package domain

import "time"

type MemberStatus string

const (
	MemberActive    MemberStatus = "active"
	MemberFrozen    MemberStatus = "frozen"
	MemberCancelled MemberStatus = "cancelled"
)

type Member struct {
	ID             int64        `json:"id"`
	OrganizationID int64        `json:"organization_id" validate:"required"`
	Name           string       `json:"name" validate:"required"`
	Email          string       `json:"email,omitempty"`
	Phone          string       `json:"phone,omitempty"`
	Status         MemberStatus `json:"status"`
	PlanID         *int64       `json:"plan_id,omitempty"`
	JoinedAt       time.Time    `json:"joined_at"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
