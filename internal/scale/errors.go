package scale

import (
	"errors"
	"fmt"
)

// Configuration errors reported by New.
var (
	// ErrEmptyName indicates a definition without a name.
	ErrEmptyName = errors.New("scale: empty name")

	// ErrNilFunction indicates a definition without a transform.
	ErrNilFunction = errors.New("scale: nil function")

	// ErrDegenerateDomain indicates begin and end map to the same coordinate
	// or to a non-finite one.
	ErrDegenerateDomain = errors.New("scale: degenerate or non-finite domain")

	// ErrInvalidLength indicates a non-positive physical length.
	ErrInvalidLength = errors.New("scale: length must be positive")

	// ErrInvalidRadius indicates a non-positive circular radius.
	ErrInvalidRadius = errors.New("scale: radius must be positive")

	// ErrNoSubsections indicates a definition without tick subsections.
	ErrNoSubsections = errors.New("scale: no subsections")

	// ErrEmptySubsection indicates a subsection without any present interval.
	ErrEmptySubsection = errors.New("scale: subsection has no tick intervals")

	// ErrInvalidInterval indicates a negative or non-finite tick interval.
	ErrInvalidInterval = errors.New("scale: invalid tick interval")

	// ErrUnorderedSubsections indicates subsection starts that do not strictly increase.
	ErrUnorderedSubsections = errors.New("scale: subsection starts must strictly increase")

	// ErrSubsectionGap indicates the first subsection starts above the domain minimum.
	ErrSubsectionGap = errors.New("scale: subsections do not cover the start of the domain")

	// ErrInvalidLabelLevel indicates a label level that names no interval.
	ErrInvalidLabelLevel = errors.New("scale: label level out of range")
)

// ConfigError wraps a configuration error with the offending scale and field.
type ConfigError struct {
	Scale string
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("scale %q: %s: %v", e.Scale, e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
