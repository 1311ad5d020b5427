package members

type CreateMemberRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	PlanID *int64 `json:"plan_id"`
}

type UpdateMemberRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	PlanID *int64 `json:"plan_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"` // active | frozen | cancelled
}
