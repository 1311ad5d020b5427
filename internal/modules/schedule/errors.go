package schedule

import "errors"

var (
	ErrInvalidPeriod = errors.New("invalid period keyword")
	ErrInvalidDate   = errors.New("invalid start date")
)
