package engine

import (
	"errors"
	"fmt"
)

// Rejection categories. Every rejected command wraps exactly one of these, so
// callers can branch with errors.Is while still showing the reason text.
var (
	ErrIllegalMove       = errors.New("illegal move")
	ErrInvalidState      = errors.New("invalid state")
	ErrInsufficientScore = errors.New("insufficient score")
)

func illegalf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalMove, fmt.Sprintf(format, args...))
}

func invalidStatef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

func insufficientScoref(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInsufficientScore, fmt.Sprintf(format, args...))
}
