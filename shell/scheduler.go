package shell

import "time"

// Scheduler paces ticks from the frame loop. The engine hands back the next
// interval after every tick; the scheduler only answers "is it time yet".
type Scheduler struct {
	interval time.Duration
	last     time.Time
	running  bool
}

// Start arms the scheduler; the first tick is due one interval after now.
func (s *Scheduler) Start(now time.Time, interval time.Duration) {
	s.last = now
	s.interval = interval
	s.running = true
}

func (s *Scheduler) Stop() {
	s.running = false
}

// Reset restarts the wait from now with a new interval. A stopped scheduler
// stays stopped.
func (s *Scheduler) Reset(now time.Time, interval time.Duration) {
	s.last = now
	s.interval = interval
}

// Due reports whether a tick should run at now.
func (s *Scheduler) Due(now time.Time) bool {
	return s.running && now.Sub(s.last) >= s.interval
}

func (s *Scheduler) Running() bool {
	return s.running
}

func (s *Scheduler) Interval() time.Duration {
	return s.interval
}
