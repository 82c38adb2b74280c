package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy for the data-service layer. Absence of an entity is a
// valid outcome, conflicts reject the operation, and consistency failures
// indicate a record referencing an account that no longer exists.
var (
	ErrNotFound           = errors.New("record not found")
	ErrConflict           = errors.New("conflict")
	ErrInconsistent       = errors.New("data inconsistency")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUsernameTaken      = fmt.Errorf("%w: username already in use", ErrConflict)
	ErrActiveSubscription = fmt.Errorf("%w: active subscription already exists", ErrConflict)
	ErrSelfSwipe          = fmt.Errorf("%w: cannot swipe on yourself", ErrInvalidArgument)
	ErrVipRequired        = errors.New("vip subscription required")
	ErrBadCredentials     = errors.New("invalid username or password")
)

// NotFoundf wraps ErrNotFound with entity context.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Inconsistentf wraps ErrInconsistent with record context.
func Inconsistentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInconsistent, fmt.Sprintf(format, args...))
}
