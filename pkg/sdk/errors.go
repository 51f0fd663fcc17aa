package jobboard

import "github.com/kailas-cloud/jobboard/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrJobNotFound       = domain.ErrJobNotFound
	ErrValidation        = domain.ErrValidation
	ErrSearchUnavailable = domain.ErrSearchUnavailable
)
