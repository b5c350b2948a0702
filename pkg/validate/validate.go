package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	playground "github.com/go-playground/validator/v10"
)

var v10 = playground.New()

// Strict layouts for user-supplied date and clock fields. Anything that
// does not parse is rejected before any date arithmetic happens.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// MissingFieldError reports the first required field that was empty or
// whitespace-only. Exactly one field is reported per validation pass.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// InvalidFieldError reports a field whose value failed format validation.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Field pairs a field name with its raw submitted value.
type Field struct {
	Name  string
	Value string
}

// Required checks fields in order and returns a MissingFieldError for the
// first one that is empty after trimming. Order matters: it determines
// which single error the caller surfaces.
func Required(fields ...Field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return &MissingFieldError{Field: f.Name}
		}
	}
	return nil
}

// Date validates a calendar date in DateLayout. Empty values pass; pair
// with Required when the field is mandatory.
func Date(name, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return &InvalidFieldError{Field: name, Reason: "must be a valid date (YYYY-MM-DD)"}
	}
	return nil
}

// Clock validates a wall-clock time in ClockLayout (24-hour HH:MM).
func Clock(name, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(ClockLayout, value); err != nil {
		return &InvalidFieldError{Field: name, Reason: "must be a valid time (HH:MM)"}
	}
	return nil
}

// Email validates an email address. Empty values pass; pair with Required
// when the field is mandatory.
func Email(name, value string) error {
	if value == "" {
		return nil
	}
	if err := v10.Var(value, "email"); err != nil {
		return &InvalidFieldError{Field: name, Reason: "must be a valid email address"}
	}
	return nil
}

// MinLen enforces a minimum length on a field, counted after trimming.
func MinLen(name, value string, min int) error {
	if len(strings.TrimSpace(value)) < min {
		return &InvalidFieldError{Field: name, Reason: fmt.Sprintf("must be at least %d characters", min)}
	}
	return nil
}

// IsFieldError reports whether err is a validation failure and, if so,
// which field it names.
func IsFieldError(err error) (string, bool) {
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return missing.Field, true
	}
	var invalid *InvalidFieldError
	if errors.As(err, &invalid) {
		return invalid.Field, true
	}
	return "", false
}
