package shared

import (
	"strings"
	"testing"
)

func TestFormatDuration(t *testing.T) {
	tc := []struct {
		name    string
		seconds int
		want    string
	}{
		{
			name:    "seconds only",
			seconds: 45,
			want:    "45s",
		},
		{
			name:    "whole minutes",
			seconds: 300,
			want:    "5m",
		},
		{
			name:    "minutes and seconds",
			seconds: 192,
			want:    "3m 12s",
		},
		{
			name:    "zero",
			seconds: 0,
			want:    "0s",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDuration(tt.seconds)
			if got != tt.want {
				t.Errorf("FormatDuration(%d) = %v, want %v", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tc := []struct {
		name    string
		seconds int
		want    string
	}{
		{
			name:    "full minutes",
			seconds: 300,
			want:    "5:00",
		},
		{
			name:    "padded seconds",
			seconds: 65,
			want:    "1:05",
		},
		{
			name:    "under a minute",
			seconds: 9,
			want:    "0:09",
		},
		{
			name:    "negative clamps to zero",
			seconds: -3,
			want:    "0:00",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatClock(tt.seconds)
			if got != tt.want {
				t.Errorf("FormatClock(%d) = %v, want %v", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestPrefixedID(t *testing.T) {
	id := PrefixedID("jr")

	if !strings.HasPrefix(id, "jr-") {
		t.Errorf("expected jr- prefix, got %s", id)
	}
	if len(id) <= len("jr-") {
		t.Errorf("expected a generated suffix, got %s", id)
	}
	if id == PrefixedID("jr") {
		t.Error("expected unique ids")
	}
}
