package core

import (
	"math"
	"testing"
)

func TestWrapTorus(t *testing.T) {
	g := NewTrailGrid(8, 6)

	cases := []struct {
		x, y         int
		wantX, wantY int
	}{
		{0, 0, 0, 0},
		{7, 5, 7, 5},
		{8, 6, 0, 0},
		{-1, -1, 7, 5},
		{-9, -7, 7, 5},
		{16, 12, 0, 0},
	}
	for _, c := range cases {
		gotX, gotY := g.Wrap(c.x, c.y)
		if gotX != c.wantX || gotY != c.wantY {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", c.x, c.y, gotX, gotY, c.wantX, c.wantY)
		}
	}
}

func TestPaintAndErase(t *testing.T) {
	g := NewTrailGrid(4, 4)

	g.Paint(2, 1, 3)
	if got := g.IntensityAt(2, 1); got != 1 {
		t.Fatalf("painted cell intensity = %f, want 1", got)
	}
	if got := g.OwnerAt(2, 1); got != 3 {
		t.Fatalf("painted cell owner = %d, want 3", got)
	}

	g.Erase(2, 1)
	if got := g.IntensityAt(2, 1); got != 0 {
		t.Fatalf("erased cell intensity = %f, want 0", got)
	}
	if got := g.OwnerAt(2, 1); got != NoOwner {
		t.Fatalf("erased cell owner = %d, want NoOwner", got)
	}
}

func TestDecayGeometricAndBounded(t *testing.T) {
	g := NewTrailGrid(3, 3)
	g.Paint(1, 1, 0)

	const retention = 200
	const k = 10
	prev := g.IntensityAt(1, 1)
	for i := 0; i < k; i++ {
		g.Decay(retention)
		got := g.IntensityAt(1, 1)
		if got >= prev {
			t.Fatalf("decay step %d did not reduce intensity: %f >= %f", i, got, prev)
		}
		prev = got
	}

	want := math.Pow(float64(retention)/255, k)
	if got := float64(g.IntensityAt(1, 1)); math.Abs(got-want) > 1e-3 {
		t.Fatalf("after %d decays intensity = %f, want %f", k, got, want)
	}

	// The owner tag survives decay so a fading trail keeps its color.
	if got := g.OwnerAt(1, 1); got != 0 {
		t.Fatalf("owner lost during decay: %d", got)
	}

	// With retention < 255 the trail eventually falls below any threshold.
	for i := 0; i < 200 && g.IntensityAt(1, 1) >= 0.001; i++ {
		g.Decay(retention)
	}
	if got := g.IntensityAt(1, 1); got >= 0.001 {
		t.Fatalf("intensity never fell below threshold: %f", got)
	}
}

func TestDecayFullRetentionIsIdentity(t *testing.T) {
	g := NewTrailGrid(3, 3)
	g.Paint(0, 0, 1)

	for i := 0; i < 50; i++ {
		g.Decay(255)
	}
	if got := g.IntensityAt(0, 0); got != 1 {
		t.Fatalf("full retention changed intensity: %f", got)
	}
}

func TestClearResetsOwners(t *testing.T) {
	g := NewTrailGrid(2, 2)
	g.Paint(0, 0, 5)
	g.Paint(1, 1, 6)

	g.Clear()
	for i, v := range g.Intensities() {
		if v != 0 {
			t.Fatalf("cell %d intensity not cleared: %f", i, v)
		}
	}
	for i, o := range g.Owners() {
		if o != NoOwner {
			t.Fatalf("cell %d owner not cleared: %d", i, o)
		}
	}
}
