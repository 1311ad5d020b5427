package billing

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrMemberNotFound = errors.New("member not found")
	ErrPlanNotFound   = errors.New("membership plan not found")
)
