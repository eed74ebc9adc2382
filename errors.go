package celldeco

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidMetrics is returned when font metrics contain NaN, infinite
	// or negative thickness values.
	ErrInvalidMetrics = errors.New("celldeco: invalid font metrics")

	// ErrInvalidSize is returned when the cell size is not positive or a
	// dimension is not finite.
	ErrInvalidSize = errors.New("celldeco: invalid cell size")
)

// ConfigError describes which configuration field failed validation.
// It wraps ErrInvalidMetrics or ErrInvalidSize.
type ConfigError struct {
	Field string
	Value float64
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s = %v", e.Err, e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
