package usecase

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
	ErrInvalidInput = errors.New("invalid input")

	ErrUserNotFound        = errors.New("user not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrApplicationNotFound = errors.New("application not found")

	ErrNotJobSeeker          = errors.New("only job seekers can use matching")
	ErrInvalidAction         = errors.New("invalid match action")
	ErrInvalidTransition     = errors.New("match status transition not allowed")
	ErrAlreadyApplied        = errors.New("application already exists for this job")
	ErrApplicationNotPending = errors.New("only pending applications can be withdrawn")
)
