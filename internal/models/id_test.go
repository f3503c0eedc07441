// ABOUTME: Tests for record ID generation.
// ABOUTME: Verifies uniqueness and creation-order monotonicity.
package models

import "testing"

func TestNewIDUniqueAndOrdered(t *testing.T) {
	seen := make(map[string]bool)
	var prev string

	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate ID: %s", id)
		}
		seen[id] = true

		// Same digit count within a run, so string order matches
		// numeric order.
		if prev != "" && id <= prev {
			t.Fatalf("ID %s not greater than previous %s", id, prev)
		}
		prev = id
	}
}

func TestProfileComplete(t *testing.T) {
	var nilProfile *Profile
	if nilProfile.Complete() {
		t.Error("nil profile reported complete")
	}

	p := NewProfile("Ada", 34, 62, 170)
	if !p.Complete() {
		t.Error("full profile reported incomplete")
	}

	// Inherited truthiness quirk: a zero age counts as incomplete.
	zeroAge := NewProfile("Ada", 0, 62, 170)
	if zeroAge.Complete() {
		t.Error("zero-age profile reported complete")
	}

	noName := NewProfile("", 34, 62, 170)
	if noName.Complete() {
		t.Error("nameless profile reported complete")
	}
}
