// Package loop provides the tick scheduling used to drive a session:
// a re-armed single-shot scheduler for event-driven front ends and a
// fixed-timestep runner for headless play.
package loop

// Scheduler tracks the one pending tick of a loop that re-arms itself
// after each tick. Arming while a tick is pending is a no-op, so a
// pause/resume in quick succession never starts a second tick chain.
type Scheduler struct {
	armed bool
	seq   uint64
}

// Arm marks a tick as pending and returns its sequence number.
// Returns false if a tick is already pending.
func (s *Scheduler) Arm() (uint64, bool) {
	if s.armed {
		return 0, false
	}
	s.armed = true
	s.seq++
	return s.seq, true
}

// Fire consumes the pending tick. Returns false for a tick that is stale
// (cancelled or superseded), which the caller must ignore.
func (s *Scheduler) Fire(seq uint64) bool {
	if !s.armed || seq != s.seq {
		return false
	}
	s.armed = false
	return true
}

// Cancel drops the pending tick, if any.
func (s *Scheduler) Cancel() {
	s.armed = false
}

// Armed reports whether a tick is pending.
func (s *Scheduler) Armed() bool {
	return s.armed
}
