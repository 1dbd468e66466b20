package validation

import (
	"testing"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "hello", true},
		{"String with spaces", "hello world", true},
		{"String with leading/trailing spaces", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_TrimAndNormalize(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Trims spaces", "  buy milk  ", "buy milk"},
		{"Keeps inner spacing", "buy  milk", "buy  milk"},
		{"Composes decomposed accents", "cafe\u0301", "caf\u00e9"},
		{"Keeps case", "Walk DOG", "Walk DOG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.TrimAndNormalize(tt.input)
			if result != tt.expected {
				t.Errorf("TrimAndNormalize(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
