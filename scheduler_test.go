package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsPendingFrameOnce(t *testing.T) {
	sched := &tickScheduler{}

	runs := 0
	sched.Schedule(func() { runs++ })

	sched.Tick()
	sched.Tick()
	assert.Equal(t, 1, runs, "a scheduled frame fires exactly once")
}

func TestSchedulerCancelPreventsFrame(t *testing.T) {
	sched := &tickScheduler{}

	runs := 0
	cancel := sched.Schedule(func() { runs++ })
	cancel()

	sched.Tick()
	assert.Equal(t, 0, runs)

	// Cancelling an already-cancelled schedule is a no-op.
	cancel()
	sched.Tick()
	assert.Equal(t, 0, runs)
}

func TestSchedulerStaleCancelDoesNotTouchNewerFrame(t *testing.T) {
	sched := &tickScheduler{}

	first := sched.Schedule(func() {})
	sched.Tick()

	runs := 0
	sched.Schedule(func() { runs++ })
	first()

	sched.Tick()
	assert.Equal(t, 1, runs, "a spent token must not cancel a later schedule")
}

func TestSchedulerFrameMayScheduleItsSuccessor(t *testing.T) {
	sched := &tickScheduler{}

	runs := 0
	var frame func()
	frame = func() {
		runs++
		sched.Schedule(frame)
	}
	sched.Schedule(frame)

	for i := 0; i < 5; i++ {
		sched.Tick()
	}
	assert.Equal(t, 5, runs, "one frame per tick, rescheduled from inside")
}
