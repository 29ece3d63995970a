package engine

import "time"

// Stepper converts variable wall-clock frame time into whole fixed ticks
type Stepper struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
}

// NewStepper creates an accumulator; maxSteps <= 0 disables the per-frame cap
func NewStepper(step time.Duration, maxSteps int) *Stepper {
	if step <= 0 {
		panic("stepper: step must be positive")
	}
	return &Stepper{step: step, maxSteps: maxSteps}
}

// Advance adds elapsed time and returns how many ticks to run now
// Whole steps beyond the cap are discarded so a stall cannot spiral
func (s *Stepper) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		s.acc += elapsed
	}
	n := int(s.acc / s.step)
	if s.maxSteps > 0 && n > s.maxSteps {
		n = s.maxSteps
		s.acc %= s.step
		return n
	}
	s.acc -= time.Duration(n) * s.step
	return n
}

// Alpha is the fraction of a step left in the accumulator
func (s *Stepper) Alpha() float64 {
	return float64(s.acc) / float64(s.step)
}

func (s *Stepper) Step() time.Duration { return s.step }

// Reset drops accumulated time
func (s *Stepper) Reset() { s.acc = 0 }
