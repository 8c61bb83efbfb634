package sched

import (
	"sync"
	"time"
)

const firedBufferSize = 64

var _ Scheduler = (*Loop)(nil)

// Loop schedules tasks on real timers.
//
// Timers fire on their own goroutines and only post the task on the Fired
// channel; the owner drains it and calls Run, so callbacks execute on the
// owner's goroutine.
type Loop struct {
	fired chan *Task
	done  chan struct{}
	once  sync.Once
}

// NewLoop creates a new scheduler loop.
func NewLoop() *Loop {
	return &Loop{
		fired: make(chan *Task, firedBufferSize),
		done:  make(chan struct{}),
	}
}

// After schedules fn to run after d.
func (l *Loop) After(d time.Duration, fn func()) *Task {
	t := &Task{fn: fn}
	timer := time.AfterFunc(d, func() {
		select {
		case l.fired <- t:
		case <-l.done:
		}
	})
	t.stop = timer.Stop
	return t
}

// Fired delivers tasks whose timer expired.
func (l *Loop) Fired() <-chan *Task {
	return l.fired
}

// Done is closed when the loop is closed.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Run executes a fired task unless it was cancelled in the meantime.
// Returns true if the callback ran.
func (l *Loop) Run(t *Task) bool {
	if t == nil {
		return false
	}
	return t.run()
}

// Close stops delivering fired tasks.
func (l *Loop) Close() {
	l.once.Do(func() {
		close(l.done)
	})
}
