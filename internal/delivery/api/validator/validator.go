// Package validator adapts the shared input validator to echo.
package validator

import (
	"clinic/internal/usecase"
)

// EchoValidator implements echo.Validator using the usecase rules so bound
// requests and direct usecase calls report identical messages.
type EchoValidator struct{}

// New returns the validator installed on the echo instance.
func New() *EchoValidator {
	return &EchoValidator{}
}

// Validate checks i against its struct tags.
func (v *EchoValidator) Validate(i any) error {
	return usecase.Validate(i)
}
