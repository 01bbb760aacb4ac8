package job

import "errors"

// Recruitment domain errors
var (
	ErrJobNotFound         = errors.New("job not found")
	ErrJobClosed           = errors.New("job is no longer open for applications")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("you have already applied for this job")
)
