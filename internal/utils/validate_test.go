package utils

import "testing"

func TestIsValidMobile(t *testing.T) {
	tests := []struct {
		mobile string
		want   bool
	}{
		{"9876543210", true},
		{"0000000000", true},
		{"987654321", false},
		{"98765432101", false},
		{"98765-4321", false},
		{"+919876543", false},
		{"９８７６５４３２１０", false},
		{"", false},
		{"abcdefghij", false},
	}

	for _, tt := range tests {
		if got := IsValidMobile(tt.mobile); got != tt.want {
			t.Errorf("IsValidMobile(%q) = %v, want %v", tt.mobile, got, tt.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"asha@example.com", true},
		{"a@b", true},
		{"no-at-sign", false},
		{"@example.com", false},
		{"asha@", false},
		{"as ha@example.com", false},
		{"a@b@c", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestClean(t *testing.T) {
	if got := Clean("  Asha \n"); got != "Asha" {
		t.Errorf("Clean() = %q, want Asha", got)
	}
}
