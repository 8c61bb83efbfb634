// Package sched provides cancellable scheduled tasks.
//
// Every callback runs on the goroutine that owns the scheduler, so callers
// can mutate playback state from a task without locking. Tasks are handles:
// cancelling one is explicit and observable, which makes debounce and
// re-entrancy guards testable.
package sched

import "time"

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	After(d time.Duration, fn func()) *Task
}

type taskState int

const (
	taskPending taskState = iota
	taskDone
	taskCancelled
)

// Task is a handle to a scheduled callback.
// A Task must only be used from the goroutine that owns its scheduler.
type Task struct {
	fn       func()
	state    taskState
	deadline time.Duration // Manual only
	seq      uint64        // Manual only
	stop     func() bool   // Loop only
}

// Cancel prevents the task from running.
// Returns false if it already ran or was already cancelled.
func (t *Task) Cancel() bool {
	if t == nil || t.state != taskPending {
		return false
	}
	t.state = taskCancelled
	if t.stop != nil {
		t.stop()
	}
	return true
}

// Pending returns true if the task has neither run nor been cancelled.
func (t *Task) Pending() bool {
	return t != nil && t.state == taskPending
}

// run executes the callback once. Cancelled or finished tasks are skipped.
func (t *Task) run() bool {
	if t.state != taskPending {
		return false
	}
	t.state = taskDone
	t.fn()
	return true
}
