package ballgame

// Timer is a repeating countdown. It fires at most once per Tick.
type Timer struct {
	period    float64
	remaining float64
	fired     bool
}

// NewTimer creates a timer that fires every period seconds.
func NewTimer(period float64) *Timer {
	return &Timer{period: period, remaining: period}
}

// Tick advances the timer by dt seconds and reports whether it fired.
// Overshoot carries into the next period.
func (t *Timer) Tick(dt float64) bool {
	t.fired = false
	if dt <= 0 {
		return false
	}

	t.remaining -= dt
	if t.remaining <= 0 {
		t.fired = true
		t.remaining += t.period
		if t.remaining <= 0 {
			t.remaining = t.period
		}
	}
	return t.fired
}

// Finished reports whether the last Tick fired.
func (t *Timer) Finished() bool {
	return t.fired
}

// Remaining returns the seconds left until the next fire.
func (t *Timer) Remaining() float64 {
	return t.remaining
}

// Reset restarts the countdown from a full period.
func (t *Timer) Reset() {
	t.remaining = t.period
	t.fired = false
}
