package utils

import (
	"testing"

	"github.com/bonusplayerslive-star/neon-kafe/pkg/apperror"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{
			name:        "valid uuid",
			input:       "2a4f8d9e-1c3b-4a5d-9e7f-0b1c2d3e4f5a",
			expectError: false,
		},
		{
			name:        "valid uuid with surrounding spaces",
			input:       "  2a4f8d9e-1c3b-4a5d-9e7f-0b1c2d3e4f5a  ",
			expectError: false,
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
		{
			name:        "wrong length",
			input:       "abc123",
			expectError: true,
		},
		{
			name:        "non-hex content",
			input:       "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.input)

			if tt.expectError {
				if err == nil {
					t.Fatal("ParseID() expected error, got nil")
				}
				if !apperror.IsValidation(err) {
					t.Errorf("ParseID() error is not a validation error: %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseID() unexpected error: %v", err)
			}
			if id.String() == "00000000-0000-0000-0000-000000000000" {
				t.Error("ParseID() returned nil uuid for valid input")
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "whole number", input: "50", want: 5000},
		{name: "decimal", input: "12.75", want: 1275},
		{name: "spaces trimmed", input: " 3.5 ", want: 350},
		{name: "malformed coerced to zero", input: "abc", want: 0},
		{name: "empty coerced to zero", input: "", want: 0},
		{name: "negative coerced to zero", input: "-4", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAmount(tt.input); got != tt.want {
				t.Errorf("ParseAmount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "valid count", input: "12", want: 12},
		{name: "zero", input: "0", want: 0},
		{name: "malformed coerced to zero", input: "many", want: 0},
		{name: "float rejected", input: "2.5", want: 0},
		{name: "negative coerced to zero", input: "-1", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCount(tt.input); got != tt.want {
				t.Errorf("ParseCount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
