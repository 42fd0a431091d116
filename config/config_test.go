package config_test

import (
	"testing"

	"replypilot/config"
)

func TestSanitizeAPIKey(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain key", "gsk_abc123", "gsk_abc123"},
		{"surrounding whitespace", "  gsk_abc123\n", "gsk_abc123"},
		{"bearer prefix", "Bearer gsk_abc123", "gsk_abc123"},
		{"lowercase bearer prefix", "bearer gsk_abc123", "gsk_abc123"},
		{"bearer prefix with extra space", "BEARER   gsk_abc123", "gsk_abc123"},
		{"empty", "", ""},
		{"bearer alone", "Bearer ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := config.SanitizeAPIKey(tc.in); got != tc.want {
				t.Errorf("SanitizeAPIKey(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
