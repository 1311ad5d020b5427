package schedule

type GenerateRequest struct {
	Period      string  `json:"period" binding:"required"` // week | two_weeks | month
	StartDate   string  `json:"start_date"`                // "2006-01-02", empty = today
	TemplateIDs []int64 `json:"template_ids"`              // empty = all active templates
}

type TemplatePlan struct {
	TemplateID       int64    `json:"template_id"`
	Title            string   `json:"title"`
	CandidateDates   []string `json:"candidate_dates"`
	AlreadyGenerated []string `json:"already_generated"`
	ToGenerate       []string `json:"to_generate"`
}

type PreviewResponse struct {
	PeriodStart     string         `json:"period_start"`
	PeriodEnd       string         `json:"period_end"` // exclusive
	Templates       []TemplatePlan `json:"templates"`
	TotalToGenerate int            `json:"total_to_generate"`
}

type ApplyResult struct {
	ClassesCreated int      `json:"classes_created"`
	Errors         []string `json:"errors,omitempty"`
}
