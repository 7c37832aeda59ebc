package langton

import (
	"math"
	"testing"
)

func TestSpeedCurveMonotonicAndConverges(t *testing.T) {
	curve := NewSpeedCurve(12, 1300, 4)

	if got := curve.StepsForFrame(0); got != initialSpeed {
		t.Fatalf("ramp start = %f, want %f", got, initialSpeed)
	}

	prev := curve.StepsForFrame(0)
	for tick := 1; tick <= 1500; tick++ {
		got := curve.StepsForFrame(tick)
		if got < prev {
			t.Fatalf("curve decreased at tick %d: %f < %f", tick, got, prev)
		}
		prev = got
	}

	for _, tick := range []int{1300, 1301, 2000, 100000} {
		if got := curve.StepsForFrame(tick); math.Abs(got-12) > 1e-9 {
			t.Fatalf("curve at tick %d = %f, want 12", tick, got)
		}
	}
}

func TestSpeedCurveZeroRampIsConstant(t *testing.T) {
	curve := NewSpeedCurve(5, 0, 4)
	for tick := 0; tick < 100; tick++ {
		if got := curve.StepsForFrame(tick); got != 5 {
			t.Fatalf("tick %d: got %f, want constant 5", tick, got)
		}
	}
}

func TestSpeedCurveFractionalCarry(t *testing.T) {
	curve := NewSpeedCurve(2.5, 0, 4)

	total := 0
	for frame := 0; frame < 10; frame++ {
		n := curve.Advance(frame)
		if n != 2 && n != 3 {
			t.Fatalf("frame %d: got %d sub-steps, want 2 or 3", frame, n)
		}
		total += n
	}
	if total != 25 {
		t.Fatalf("10 frames at 2.5 steps/frame executed %d sub-steps, want 25", total)
	}
}

func TestSpeedCurveSlowFinalStaysConstant(t *testing.T) {
	// When the target rate is below the slow-start constant the curve must
	// not overshoot it; the initial speed clamps down to the final one.
	curve := NewSpeedCurve(0.5, 100, 4)
	for tick := 0; tick < 200; tick++ {
		if got := curve.StepsForFrame(tick); got != 0.5 {
			t.Fatalf("tick %d: got %f, want 0.5", tick, got)
		}
	}

	total := 0
	for frame := 0; frame < 10; frame++ {
		total += curve.Advance(frame)
	}
	if total != 5 {
		t.Fatalf("10 frames at 0.5 steps/frame executed %d sub-steps, want 5", total)
	}
}

func TestSpeedCurveEasePowerShapesRamp(t *testing.T) {
	gentle := NewSpeedCurve(10, 100, 1)
	steep := NewSpeedCurve(10, 100, 4)

	// Midway through the ramp a higher exponent must lag the linear one.
	if g, s := gentle.StepsForFrame(50), steep.StepsForFrame(50); s >= g {
		t.Fatalf("power 4 should lag power 1 mid-ramp: %f >= %f", s, g)
	}
	// Both arrive at the same final rate.
	if g, s := gentle.StepsForFrame(100), steep.StepsForFrame(100); g != s {
		t.Fatalf("curves disagree at ramp end: %f vs %f", g, s)
	}
}
