package state

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateSessionID(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		valid     bool
	}{
		{"valid lowercase hex", "abcdef0123456789abcdef0123456789", true},
		{"valid mixed case", "AbCdEf0123456789aBcDeF0123456789", true},
		{"valid all digits", strings.Repeat("7", 32), true},
		{"too short", strings.Repeat("a", 31), false},
		{"too long", strings.Repeat("a", 33), false},
		{"empty", "", false},
		{"contains semicolon", "abcdef0123456789abcdef012345678;", false},
		{"contains hyphen", "abcdef01-2345-6789-abcd-ef0123456", false},
		{"contains space", "abcdef0123456789abcdef012345678 ", false},
		{"contains slash", "abcdef0123456789abcdef012345678/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessionID(tt.sessionID)
			if tt.valid && err != nil {
				t.Errorf("Expected valid session id, got %v", err)
			}
			if !tt.valid {
				if !errors.Is(err, ErrInvalidSessionID) {
					t.Errorf("Expected ErrInvalidSessionID, got %v", err)
				}
			}
		})
	}
}

func TestNewSessionID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewSessionID()
		if err := ValidateSessionID(id); err != nil {
			t.Fatalf("Generated session id %q is not valid: %v", id, err)
		}
		if seen[id] {
			t.Fatalf("Generated duplicate session id %q", id)
		}
		seen[id] = true
	}
}
