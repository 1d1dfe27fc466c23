package service

import "errors"

// Kind classifies a domain error. Handlers map each kind to one HTTP status.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is a domain error with a stable, client-safe message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func validationError(msg string) error {
	return newError(KindValidation, msg)
}

// KindOf returns the kind of a domain error, ok is false for internal errors.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

var (
	// DuplicateEmail is reported as a validation failure on the register endpoints.
	ErrDuplicateEmail     = newError(KindValidation, "email already exists")
	ErrInvalidRole        = newError(KindValidation, "invalid role")
	ErrInvalidCredentials = newError(KindUnauthorized, "invalid credentials")
	ErrForbidden          = newError(KindForbidden, "forbidden")

	ErrUserNotFound    = newError(KindNotFound, "user not found")
	ErrCourseNotFound  = newError(KindNotFound, "course not found")
	ErrNotEnrolled     = newError(KindNotFound, "not enrolled in this course")
	ErrProfileNotFound = newError(KindNotFound, "athlete profile not found")
	ErrPlanNotFound    = newError(KindNotFound, "workout plan not found")

	ErrAlreadyEnrolled = newError(KindConflict, "already enrolled in this course")
	ErrAlreadyFollowed = newError(KindConflict, "athlete already followed")

	ErrMissingAthlete = newError(KindValidation, "athleteId is required")
	ErrNotAnAthlete   = newError(KindValidation, "athleteId must belong to an athlete")
)
