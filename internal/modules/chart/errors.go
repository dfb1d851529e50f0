package chart

import (
	"errors"
	"fmt"
)

// Construction failures. Callers match them with errors.Is.
var (
	ErrMissingPlanet    = errors.New("missing required planet")
	ErrInvalidLongitude = errors.New("invalid longitude")
	ErrInvalidAyanamsa  = errors.New("invalid ayanamsa")
	ErrInvalidLocation  = errors.New("invalid location")
	ErrMissingBirth     = errors.New("missing birth time")
)

// BuildError reports which input field stopped chart construction.
type BuildError struct {
	Field string
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("chart construction failed: %s: %v", e.Field, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

func buildErr(field string, err error) error {
	return &BuildError{Field: field, Err: err}
}
