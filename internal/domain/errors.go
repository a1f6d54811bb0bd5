package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrNotAuthorized = errors.New("not authorized")
)

// ValidationError reports every field rule violated by an input, one
// human-readable message per rule, in field declaration order. It is produced
// client-side before any store call.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid event: " + strings.Join(e.Messages, "; ")
}

// StoreError is a normalized network or store-side failure. Repositories wrap
// every unrecognized driver error in one of these so that raw transport
// errors never cross the storage boundary.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
