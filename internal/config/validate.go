package config

import (
	"errors"

	"github.com/canonpack/canonpack/pkg/canonical"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidTarget indicates an unrecognized target format name.
	ErrInvalidTarget = errors.New("invalid target format")

	// ErrInvalidLogFormat indicates an unrecognized log format.
	ErrInvalidLogFormat = errors.New("log format must be \"text\" or \"json\"")

	// ErrNegativePenalty indicates a penalty override below zero.
	ErrNegativePenalty = errors.New("penalty must be >= 0")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	// Version must be >= 1
	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.DefaultTarget != "" {
		if _, err := canonical.ParseFormat(cfg.DefaultTarget); err != nil {
			errs = append(errs, &FieldError{
				Field: "default_target",
				Value: cfg.DefaultTarget,
				Err:   ErrInvalidTarget,
			})
		}
	}

	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		errs = append(errs, &FieldError{
			Field: "log_format",
			Value: cfg.LogFormat,
			Err:   ErrInvalidLogFormat,
		})
	}

	for _, p := range []struct {
		field string
		value int
	}{
		{"penalties.lossy_warning", cfg.Penalties.LossyWarning},
		{"penalties.subtype_mismatch", cfg.Penalties.SubtypeMismatch},
		{"penalties.validation_error", cfg.Penalties.ValidationError},
	} {
		if p.value < 0 {
			errs = append(errs, &FieldError{
				Field: p.field,
				Err:   ErrNegativePenalty,
			})
		}
	}

	return errs
}

// FieldError represents a validation error for a specific config field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return e.Field + ": " + e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
