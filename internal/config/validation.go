// This file implements validation for theme values. Color expressions
// are not validated here; they resolve against the environment (the
// accent color in particular) and surface their own errors at resolve
// time.

package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a theme validation error.
// It contains the field name and a description of the issue.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the results of a theme validation.
type ValidationResult struct {
	// Errors contains all validation errors found.
	Errors []ValidationError
	// Warnings contains non-fatal issues (e.g., unusually large values).
	Warnings []ValidationError
}

// IsValid returns true if there are no validation errors.
func (vr *ValidationResult) IsValid() bool {
	return len(vr.Errors) == 0
}

// Error returns a combined error message if there are errors, nil otherwise.
func (vr *ValidationResult) Error() error {
	if len(vr.Errors) == 0 {
		return nil
	}

	messages := make([]string, 0, len(vr.Errors))
	for _, e := range vr.Errors {
		messages = append(messages, e.Error())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(messages, "; "))
}

// AddError adds a validation error.
func (vr *ValidationResult) AddError(field, message string) {
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Message: message})
}

// AddWarning adds a validation warning.
func (vr *ValidationResult) AddWarning(field, message string) {
	vr.Warnings = append(vr.Warnings, ValidationError{Field: field, Message: message})
}

// Bounds beyond which theme geometry draws a warning.
const (
	maxReasonableWidth  = 100
	maxReasonableOffset = 100
)

// Validate checks the theme geometry.
func (t *Theme) Validate() *ValidationResult {
	result := &ValidationResult{}

	if t.Width < 0 {
		result.AddError("theme.width", fmt.Sprintf("must be non-negative, got %d", t.Width))
	} else if t.Width > maxReasonableWidth {
		result.AddWarning("theme.width", fmt.Sprintf("unusually thick border %d", t.Width))
	}

	if t.Radius < 0 {
		result.AddError("theme.radius", fmt.Sprintf("must be non-negative, got %g", t.Radius))
	}

	if t.Offset < -maxReasonableOffset || t.Offset > maxReasonableOffset {
		result.AddWarning("theme.offset", fmt.Sprintf("unusually large offset %d", t.Offset))
	}

	return result
}
