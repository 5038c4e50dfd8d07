// ABOUTME: Tests for the shared CLI output helpers.
// ABOUTME: Covers truncation, padding, and on/off parsing.
package main

import "testing"

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short, 10) = %q", got)
	}
	if got := truncate("exactly-10", 10); got != "exactly-10" {
		t.Errorf("truncate(exactly-10, 10) = %q", got)
	}
	if got := truncate("a much longer string", 10); got != "a much ..." {
		t.Errorf("truncate long = %q", got)
	}
	if got := truncate("abcdef", 3); got != "abc" {
		t.Errorf("truncate(abcdef, 3) = %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight(ab, 5) = %q", got)
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Errorf("padRight(abcdef, 3) = %q", got)
	}
}

func TestOptionalFlag(t *testing.T) {
	if optionalFlag("") != nil {
		t.Error("expected nil for empty flag")
	}
	p := optionalFlag("notes")
	if p == nil || *p != "notes" {
		t.Errorf("optionalFlag(notes) = %v", p)
	}
}

func TestParseOnOff(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"on", true}, {"off", false}, {"true", true}, {"false", false},
	} {
		got, err := parseOnOff(tc.in)
		if err != nil {
			t.Errorf("parseOnOff(%q) errored: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("parseOnOff(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := parseOnOff("maybe"); err == nil {
		t.Error("expected error for invalid value")
	}
}
