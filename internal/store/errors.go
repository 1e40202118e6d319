package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Update when the target id is unknown. Get
// reports absence as a boolean instead, and Delete treats it as a no-op.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateID is returned by Add when the id is already present.
var ErrDuplicateID = errors.New("duplicate id")

// PersistenceError reports a durable storage failure. The store keeps its
// in-memory state as the last known good value, so memory and disk may
// disagree until a later save succeeds; callers decide whether to retry.
type PersistenceError struct {
	Collection string
	Op         string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
