package core

import (
	"testing"
	"time"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("same-seed RNGs diverged at draw %d: %d vs %d", i, x, y)
		}
	}
	if got := NewRNG(1).IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) (Sim, error) { return nil, nil })
	Register("nilfactory", nil)
	if got := len(Sims()); got != before {
		t.Fatalf("registry grew from invalid registrations: %d -> %d", before, got)
	}
}

func TestFixedStepPacing(t *testing.T) {
	fs := NewFixedStep(100)

	// The accumulator is pre-charged, so the first check fires immediately.
	if !fs.ShouldStep() {
		t.Fatal("first ShouldStep should fire")
	}
	if fs.ShouldStep() {
		t.Fatal("second immediate ShouldStep should wait")
	}
	time.Sleep(12 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("ShouldStep should fire after a full step elapsed")
	}
}

func TestFixedStepRunStopsWhenDone(t *testing.T) {
	fs := NewFixedStep(1000)
	count := 0
	fs.Run(func() bool {
		count++
		return count >= 5
	})
	if count != 5 {
		t.Fatalf("Run executed %d steps, want 5", count)
	}
}
