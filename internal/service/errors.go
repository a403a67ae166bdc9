package service

import "errors"

// Failure taxonomy surfaced to controllers: caller faults map to 400,
// not-found to 404, everything else to a generic 500.
var (
	ErrSurveyNotFound   = errors.New("survey not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrEmptyAnswers     = errors.New("answers[] is required and must not be empty")
	ErrAlreadyResponded = errors.New("user has already responded to this survey")
	ErrDuplicateEmail   = errors.New("a user with this email already exists")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrSurveyNotFound) || errors.Is(err, ErrUserNotFound)
}

func IsCallerFault(err error) bool {
	return errors.Is(err, ErrEmptyAnswers) ||
		errors.Is(err, ErrAlreadyResponded) ||
		errors.Is(err, ErrDuplicateEmail)
}
