package jsonschema

import (
	"fmt"
	"strings"
)

// Violation is one concrete reason a value failed a single keyword's
// constraint: the keyword tag (e.g. "minLength") and a human-readable message.
type Violation struct {
	Keyword string
	Message string
}

// ValidationError is the aggregate failure produced by one Validate call.
//
// It forms a tree: a leaf carries a keyword and a message, an aggregate owns
// an ordered list of child causes. Validate raises exactly one ValidationError
// per call that found at least one problem, and the aggregate is never
// constructed with an empty cause list. Even a single violation is wrapped,
// so callers can always rely on Causes holding the complete violation set.
type ValidationError struct {
	// Schema is the node that produced this failure.
	Schema Schema

	// Keyword tags the violated constraint for leaf failures (e.g. "type",
	// "minLength", "pattern", "format"). Empty for aggregates.
	Keyword string

	// Message is the human-readable failure description.
	Message string

	// Causes holds the child failures of an aggregate, in check order.
	// Empty for leaf failures.
	Causes []*ValidationError
}

// Error implements the error interface. Aggregates render their full leaf
// message list so nothing is lost when the error is logged as a string.
func (e *ValidationError) Error() string {
	if len(e.Causes) == 0 {
		return e.Message
	}
	leaves := e.Flatten()
	parts := make([]string, len(leaves))
	for i, v := range leaves {
		parts[i] = v.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(parts, "; "))
}

// Flatten returns the leaf violations of this error in depth-first order.
func (e *ValidationError) Flatten() []Violation {
	if len(e.Causes) == 0 {
		return []Violation{{Keyword: e.Keyword, Message: e.Message}}
	}
	var out []Violation
	for _, c := range e.Causes {
		out = append(out, c.Flatten()...)
	}
	return out
}

// ViolationCount returns the number of leaf violations carried by this error.
func (e *ValidationError) ViolationCount() int {
	if len(e.Causes) == 0 {
		return 1
	}
	n := 0
	for _, c := range e.Causes {
		n += c.ViolationCount()
	}
	return n
}

// newViolation builds a leaf failure for one violated keyword.
func newViolation(s Schema, keyword, message string) *ValidationError {
	return &ValidationError{
		Schema:  s,
		Keyword: keyword,
		Message: message,
	}
}

// aggregate wraps the accumulated causes into a single error for s, or
// returns nil when no check failed. The causes are always wrapped, even when
// there is only one, keeping the reporting contract uniform across variants.
func aggregate(s Schema, causes []*ValidationError) error {
	if len(causes) == 0 {
		return nil
	}
	n := 0
	for _, c := range causes {
		n += c.ViolationCount()
	}
	return &ValidationError{
		Schema:  s,
		Message: fmt.Sprintf("%d schema violations found", n),
		Causes:  causes,
	}
}
