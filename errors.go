package flattree

import "github.com/hupe1980/flattree/core"

// Errors shared by all encodings. They are aliases of the core sentinels,
// so errors.Is works with either.
var (
	ErrOutOfRange        = core.ErrOutOfRange
	ErrEmptyPath         = core.ErrEmptyPath
	ErrPathTooLong       = core.ErrPathTooLong
	ErrPathDoesNotMatch  = core.ErrPathDoesNotMatch
	ErrSentinelCollision = core.ErrSentinelCollision
	ErrCorrupt           = core.ErrCorrupt
	ErrTooLarge          = core.ErrTooLarge
)

// OutOfRangeError describes an index beyond the valid range of an encoding.
type OutOfRangeError = core.OutOfRangeError

// ConfigError reports an invalid encoder input.
type ConfigError = core.ConfigError
