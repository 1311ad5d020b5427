package members

import "errors"

var (
	ErrNotFound          = errors.New("member not found")
	ErrPlanNotFound      = errors.New("membership plan not found")
	ErrInvalidStatus     = errors.New("invalid member status")
	ErrInvalidTransition = errors.New("invalid status transition")
)
