package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a level, node or slot index lies beyond
	// the structurally valid range of an encoding.
	ErrOutOfRange = errors.New("out of range")

	// ErrEmptyPath is returned by path queries that require at least one element.
	ErrEmptyPath = errors.New("empty path is not allowed")

	// ErrPathTooLong is returned when a path continues below a leaf.
	ErrPathTooLong = errors.New("path is too long")

	// ErrPathDoesNotMatch is returned when a path element matches no node at its level.
	ErrPathDoesNotMatch = errors.New("path does not match")

	// ErrSentinelCollision is returned when the marker for empty slots equals a real node value.
	ErrSentinelCollision = errors.New("sentinel collides with a node value")

	// ErrCorrupt is returned when a flat representation violates its layout invariants.
	ErrCorrupt = errors.New("corrupt encoding")

	// ErrTooLarge is returned when a tree exceeds the addressable size of an encoding.
	ErrTooLarge = errors.New("tree too large")
)

// OutOfRangeError describes an index that lies beyond the valid range.
//
// errors.Is(err, ErrOutOfRange) reports true for every OutOfRangeError.
type OutOfRangeError struct {
	What  string
	Index int
	Limit int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [0, %d)", e.What, e.Index, e.Limit)
}

// Is implements errors.Is support for ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

// NewOutOfRange returns an OutOfRangeError for index what[index] with limit entries.
func NewOutOfRange(what string, index, limit int) error {
	return &OutOfRangeError{What: what, Index: index, Limit: limit}
}

// ConfigError reports an invalid encoder input detected at construction time.
//
// The original underlying error can be accessed via errors.Unwrap.
type ConfigError struct {
	Field string
	cause error
}

// NewConfigError wraps cause as a configuration error on field.
func NewConfigError(field string, cause error) error {
	return &ConfigError{Field: field, cause: cause}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.cause)
}

func (e *ConfigError) Unwrap() error { return e.cause }
