package rng

import (
	"math"
	"testing"
)

func TestFloat64Recurrence(t *testing.T) {
	r := New(1)
	// (1*9301 + 49297) mod 233280 = 58598
	if got, want := r.Float64(), 58598.0/233280; got != want {
		t.Errorf("first draw = %v, want %v", got, want)
	}
	// (58598*9301 + 49297) mod 233280
	next := math.Mod(58598*9301+49297, 233280)
	if got, want := r.Float64(), next/233280; got != want {
		t.Errorf("second draw = %v, want %v", got, want)
	}
}

func TestDeterministic(t *testing.T) {
	a, b := New(0.42), New(0.42)
	for i := range 100 {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a, b := New(1), New(2)
	if a.Float64() == b.Float64() {
		t.Error("different seeds should produce different first draws")
	}
}

func TestFloat64Range(t *testing.T) {
	r := New(12345.678)
	for range 10000 {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, out of [0,1)", v)
		}
	}
}

func TestRangeAndIntn(t *testing.T) {
	r := New(7)
	for range 1000 {
		if v := r.Range(48, 80); v < 48 || v >= 80 {
			t.Fatalf("Range(48,80) = %v", v)
		}
		if n := r.Intn(3); n < 0 || n > 2 {
			t.Fatalf("Intn(3) = %d", n)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}

func TestPick(t *testing.T) {
	items := []string{"a", "b", "c"}
	seen := map[string]bool{}
	r := New(99)
	for range 200 {
		seen[Pick(r, items)] = true
	}
	if len(seen) != 3 {
		t.Errorf("Pick should reach every item, saw %v", seen)
	}
}
