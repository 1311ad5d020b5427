package domain

import "time"

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

type Payment struct {
	ID             int64         `json:"id"`
	OrganizationID int64         `json:"organization_id" validate:"required"`
	MemberID       int64         `json:"member_id" validate:"required"`
	PlanID         *int64        `json:"plan_id,omitempty"`
	Amount         float64       `json:"amount" validate:"gt=0"`
	Method         PaymentMethod `json:"method"`
	Notes          string        `json:"notes,omitempty"`
	PaidAt         time.Time     `json:"paid_at"`
	CreatedAt      time.Time     `json:"created_at"`
}
