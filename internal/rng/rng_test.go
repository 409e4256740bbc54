package rng

import (
	"math"
	"testing"
)

func TestNewSeededIsDeterministic(t *testing.T) {
	a := NewSeeded(12345, 2)
	b := NewSeeded(12345, 2)
	for i := 0; i < 100; i++ {
		if av, bv := a.Uint64(), b.Uint64(); av != bv {
			t.Fatalf("stream %d: %d != %d, want identical streams for identical (seed, worker)", i, av, bv)
		}
	}
}

func TestNewSeededDiffersByWorkerIndex(t *testing.T) {
	a := NewSeeded(12345, 0)
	b := NewSeeded(12345, 1)
	same := true
	for i := 0; i < 8; i++ {
		if a.Uint64() != b.Uint64() {
			same = false
			break
		}
	}
	if same {
		t.Error("different worker indices produced identical streams")
	}
}

func TestIntNWithinBounds(t *testing.T) {
	src := NewSeeded(1, 0)
	for n := 1; n <= 37; n++ {
		for i := 0; i < 2000; i++ {
			v := src.IntN(n)
			if v < 0 || v >= n {
				t.Fatalf("IntN(%d) = %d, out of [0, %d)", n, v, n)
			}
		}
	}
}

func TestIntNZeroAndNegative(t *testing.T) {
	src := NewSeeded(1, 0)
	if src.IntN(0) != 0 {
		t.Error("IntN(0) should return 0")
	}
	if src.IntN(-5) != 0 {
		t.Error("IntN(negative) should return 0")
	}
}

// TestIntNUnbiasedNonPowerOfTwo checks the rejection-sampling branch (n not a
// power of two) produces an approximately uniform distribution, guarding
// against a rejection condition that favors one end of the range.
func TestIntNUnbiasedNonPowerOfTwo(t *testing.T) {
	const n = 6
	const trials = 200000
	src := NewSeeded(42, 0)
	counts := make([]int, n)
	for i := 0; i < trials; i++ {
		counts[src.IntN(n)]++
	}
	expected := float64(trials) / float64(n)
	for v, c := range counts {
		dev := math.Abs(float64(c)-expected) / expected
		if dev > 0.05 {
			t.Errorf("bucket %d: count %d deviates %.1f%% from expected %.0f, want < 5%%", v, c, dev*100, expected)
		}
	}
}

func TestFloat64Range(t *testing.T) {
	src := NewSeeded(7, 0)
	for i := 0; i < 10000; i++ {
		v := src.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, out of [0, 1)", v)
		}
	}
}

func TestNewAutoSeedsDifferently(t *testing.T) {
	a := New(0)
	b := New(0)
	same := true
	for i := 0; i < 4; i++ {
		if a.Uint64() != b.Uint64() {
			same = false
			break
		}
	}
	if same {
		t.Error("two auto-seeded sources produced identical streams")
	}
}
