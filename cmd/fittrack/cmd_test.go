// ABOUTME: Tests for CLI formatting helpers.
// ABOUTME: Column padding and pluralization.
package main

import "testing"

func TestPadRight(t *testing.T) {
	tests := []struct {
		in     string
		length int
		want   string
	}{
		{"abc", 5, "abc  "},
		{"abc", 3, "abc"},
		{"abcdef", 3, "abcdef"},
		{"", 2, "  "},
	}
	for _, tt := range tests {
		if got := padRight(tt.in, tt.length); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.in, tt.length, got, tt.want)
		}
	}
}

func TestPluralize(t *testing.T) {
	if got := pluralize(1, "glass", "glasses"); got != "glass" {
		t.Errorf("pluralize(1) = %q", got)
	}
	if got := pluralize(0, "glass", "glasses"); got != "glasses" {
		t.Errorf("pluralize(0) = %q", got)
	}
	if got := pluralize(3, "glass", "glasses"); got != "glasses" {
		t.Errorf("pluralize(3) = %q", got)
	}
}
