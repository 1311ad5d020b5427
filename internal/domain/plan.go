package domain

import "time"

type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
)

type MembershipPlan struct {
	ID             int64         `json:"id"`
	OrganizationID int64         `json:"organization_id" validate:"required"`
	Name           string        `json:"name" validate:"required"`
	Price          float64       `json:"price" validate:"gte=0"`
	BillingPeriod  BillingPeriod `json:"billing_period"`
	IsActive       bool          `json:"is_active"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
