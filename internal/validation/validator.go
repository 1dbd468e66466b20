package validation

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndNormalize trims surrounding whitespace and returns the NFC form,
// so visually identical descriptions are stored with identical bytes.
func (v *Validator) TrimAndNormalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
