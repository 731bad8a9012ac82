// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package idgen

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("GenerateID() = %q is not a UUID: %v", id, err)
	}

	// Test randomness - two IDs should be different
	if GenerateID() == GenerateID() {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestGenerateJoinCode(t *testing.T) {
	for i := 0; i < 500; i++ {
		code, err := GenerateJoinCode()
		if err != nil {
			t.Fatalf("GenerateJoinCode() error = %v", err)
		}
		if !IsJoinCode(code) {
			t.Fatalf("GenerateJoinCode() = %q, want 5 digits in [10000, 99999]", code)
		}
	}
}

func TestIsJoinCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"10000", true},
		{"99999", true},
		{"54321", true},
		{"09999", false},
		{"9999", false},
		{"100000", false},
		{"12a45", false},
		{"", false},
		{"+1234", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := IsJoinCode(tt.code); got != tt.want {
				t.Errorf("IsJoinCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}
