package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 64; i++ {
		if a.Chance(0.5) != b.Chance(0.5) {
			t.Fatalf("draw %d diverged", i)
		}
	}
}

func TestRNGChanceBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatalf("chance 0 returned true")
		}
		if !r.Chance(1) {
			t.Fatalf("chance 1 returned false")
		}
	}
}
