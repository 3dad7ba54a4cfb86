package report

import "FinTrack/pkg/response"

var (
	ErrInvalidPeriod      = response.NewError(400, "start date must not be after end date")
	ErrFuturePeriod       = response.NewError(400, "start date must not be in the future")
	ErrInvalidMonthsRange = response.NewError(400, "months must be between 1 and 24")
	ErrInvalidYearsRange  = response.NewError(400, "years must be between 1 and 10")
	ErrInvalidLimit       = response.NewError(400, "limit must be between 1 and 20")
	ErrInvalidDirection   = response.NewError(400, "direction must be income or expense")
)
