package repository

import "testing"

func TestSanitizeProjectID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase passthrough", "proj-123", "proj-123"},
		{"uppercase folded", "Proj-ABC", "proj-abc"},
		{"uuid preserved", "9cfb482a-81e3-4154-b5b9-2c805e70a02d", "9cfb482a-81e3-4154-b5b9-2c805e70a02d"},
		{"punctuation collapsed", "a!!b__c", "a-b-c"},
		{"spaces collapsed", "My  Project", "my-project"},
		{"leading trailing stripped", "--abc--", "abc"},
		{"unicode stripped", "café", "caf"},
		{"empty", "", ""},
		{"only separators", "___", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeProjectID(tt.in)
			if got != tt.want {
				t.Errorf("SanitizeProjectID(%q) = %q, want %q", tt.in, got, tt.want)
			}
			// The key must be stable under re-sanitization.
			if again := SanitizeProjectID(got); again != got {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}
