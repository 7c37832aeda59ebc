package langton

import "math"

// initialSpeed is the slow-start rate of the ramp in steps per frame.
const initialSpeed = 1.0

// SpeedCurve maps the elapsed tick count to a steps-per-frame rate and
// carries the fractional remainder between frames, so the realized average
// converges on the curve regardless of how many frames are rendered.
type SpeedCurve struct {
	final       float64
	rampFrames  int
	power       float64
	accumulator float64
}

// NewSpeedCurve constructs an ease-in ramp from initialSpeed to final over
// rampFrames ticks, shaped by the given exponent.
func NewSpeedCurve(final float64, rampFrames int, power float64) *SpeedCurve {
	return &SpeedCurve{final: final, rampFrames: rampFrames, power: power}
}

// SetFinal retargets the asymptotic steps-per-frame rate.
func (s *SpeedCurve) SetFinal(final float64) { s.final = final }

// SetRampFrames changes the length of the ease-in ramp.
func (s *SpeedCurve) SetRampFrames(frames int) { s.rampFrames = frames }

// SetPower changes the exponent shaping the ramp.
func (s *SpeedCurve) SetPower(power float64) { s.power = power }

// StepsForFrame returns the target (possibly fractional) sub-step rate for
// the given tick. Pure: the fractional accumulator is untouched.
func (s *SpeedCurve) StepsForFrame(tick int) float64 {
	initial := initialSpeed
	if s.final < initial {
		initial = s.final
	}
	t := 1.0
	if s.rampFrames > 0 {
		t = float64(tick) / float64(s.rampFrames)
		if t > 1 {
			t = 1
		}
	}
	eased := math.Pow(t, s.power)
	return initial + (s.final-initial)*eased
}

// Advance accrues the rate for the given tick and returns the whole number
// of sub-steps to execute this frame, keeping the remainder for the next.
func (s *SpeedCurve) Advance(tick int) int {
	s.accumulator += s.StepsForFrame(tick)
	n := int(s.accumulator)
	s.accumulator -= float64(n)
	return n
}
