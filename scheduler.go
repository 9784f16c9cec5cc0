package main

// Scheduler hands out single-shot frame callbacks, one at a time. Schedule
// registers the next frame and returns a cancel func; cancelling twice, or
// cancelling after the frame already ran, is a no-op.
type Scheduler interface {
	Schedule(frame func()) (cancel func())
}

// tickScheduler adapts the schedule/cancel contract to ebiten's game loop,
// which owns the frame clock: the host calls Tick once per update and the
// pending callback, if any, runs then. Everything happens on the one game
// loop goroutine, so no locking is involved.
type tickScheduler struct {
	pending func()
	gen     uint64
}

func (s *tickScheduler) Schedule(frame func()) func() {
	s.gen++
	gen := s.gen
	s.pending = frame
	return func() {
		// A stale token must not cancel a newer schedule
		if s.gen == gen {
			s.pending = nil
		}
	}
}

// Tick runs the pending frame, if any. The frame may schedule its successor.
func (s *tickScheduler) Tick() {
	if s.pending == nil {
		return
	}
	frame := s.pending
	s.pending = nil
	frame()
}
