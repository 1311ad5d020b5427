package billing

type CreatePlanRequest struct {
	Name          string  `json:"name" binding:"required"`
	Price         float64 `json:"price" binding:"gte=0"`
	BillingPeriod string  `json:"billing_period" binding:"required"` // monthly | yearly
}

type RecordPaymentRequest struct {
	MemberID int64   `json:"member_id" binding:"required"`
	PlanID   *int64  `json:"plan_id"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Method   string  `json:"method" binding:"required"` // cash | card | transfer
	Notes    string  `json:"notes"`
	PaidAt   string  `json:"paid_at"` // RFC 3339, empty = now
}
