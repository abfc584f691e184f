package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUpstream     = errors.New("upstream request failed")
	ErrDecode       = errors.New("failed to decode upstream payload")
	ErrMissingField = errors.New("missing field")
)

// MissingFieldError names the key that an upstream payload did not carry.
type MissingFieldError struct {
	Field   string
	Context string
}

func (e *MissingFieldError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("missing field %q", e.Field)
	}
	return fmt.Sprintf("missing field %q in %s", e.Field, e.Context)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
