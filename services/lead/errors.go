package lead

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStoreUnavailable is returned when the service runs without a database.
var ErrStoreUnavailable = errors.New("database not initialized")

// Violation is one failed constraint. Loc is the path to the offending
// value, e.g. ["body", "email"].
type Violation struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError carries every violation found in one input.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(v.Loc, "."), v.Msg))
	}
	return fmt.Sprintf("%d validation error(s): %s", len(e.Violations), strings.Join(parts, "; "))
}

// StoreError wraps any failure coming back from the document store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
