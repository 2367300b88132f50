package store

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError reports a rejected timer spec.
type ValidationError struct {
	Field  string
	Reason string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", err.Field, err.Reason)
}

// Spec describes a timer to create.
type Spec struct {
	Name         string
	Category     string
	Duration     int // seconds, > 0
	HalfwayAlert bool
}

// ParseSpec builds a Spec from raw form input. The duration must parse
// to a positive whole number of seconds.
func ParseSpec(name, category, duration string, halfwayAlert bool) (Spec, error) {
	spec := Spec{
		Name:         strings.TrimSpace(name),
		Category:     strings.TrimSpace(category),
		HalfwayAlert: halfwayAlert,
	}

	seconds, err := strconv.Atoi(strings.TrimSpace(duration))
	if err != nil {
		return Spec{}, &ValidationError{Field: "duration", Reason: "must be a whole number of seconds"}
	}
	spec.Duration = seconds

	if err := spec.validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

func (spec Spec) validate() error {
	if strings.TrimSpace(spec.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(spec.Category) == "" {
		return &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if spec.Duration <= 0 {
		return &ValidationError{Field: "duration", Reason: "must be greater than zero"}
	}
	return nil
}
