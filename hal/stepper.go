package hal

import "time"

const (
	// DefaultTimestep is the fixed update interval.
	DefaultTimestep = time.Second / 240
	// DefaultMaxSteps caps updates per rendered frame after a stall.
	DefaultMaxSteps = 64
)

// stepper turns wall-clock frame times into fixed-size Update calls.
type stepper struct {
	now      func() time.Time
	timestep time.Duration
	maxSteps int

	last time.Time
	acc  time.Duration
	t    float64 // simulated seconds
}

func newStepper(timestep time.Duration, maxSteps int, now func() time.Time) *stepper {
	if timestep <= 0 {
		timestep = DefaultTimestep
	}
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	if now == nil {
		now = time.Now
	}
	return &stepper{now: now, timestep: timestep, maxSteps: maxSteps, last: now()}
}

// advance runs as many Update steps as the time since the previous call
// allows, calling poll before each. It returns the number of steps run.
func (s *stepper) advance(app App, poll func()) int {
	now := s.now()
	s.acc += now.Sub(s.last)
	s.last = now

	dt := float32(s.timestep.Seconds())
	steps := 0
	for s.acc >= s.timestep {
		if steps == s.maxSteps {
			// Drop the backlog instead of trying to catch up.
			s.acc %= s.timestep
			break
		}
		if poll != nil {
			poll()
		}
		app.Update(float32(s.t), dt)
		s.acc -= s.timestep
		s.t += s.timestep.Seconds()
		steps++
	}
	return steps
}
