package sched

import "time"

var _ Scheduler = (*Manual)(nil)

// Manual is a deterministic scheduler driven by Advance.
// Used in tests in place of Loop.
type Manual struct {
	now   time.Duration
	seq   uint64
	tasks []*Task
}

// NewManual creates a manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// After schedules fn to run once the clock reaches now+d.
func (m *Manual) After(d time.Duration, fn func()) *Task {
	m.seq++
	t := &Task{fn: fn, deadline: m.now + max(d, 0), seq: m.seq}
	m.tasks = append(m.tasks, t)
	return t
}

// Now returns the elapsed time on the manual clock.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Advance moves the clock forward by d, running due tasks in deadline order.
// Tasks scheduled by running tasks also run if they fall due within d.
// Returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	target := m.now + d
	ran := 0
	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		m.now = t.deadline
		if t.run() {
			ran++
		}
	}
	m.now = target
	m.compact()
	return ran
}

// Pending returns the number of tasks that have not run or been cancelled.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}

// nextDue returns the earliest pending task due at or before target.
// Ties are broken by scheduling order.
func (m *Manual) nextDue(target time.Duration) *Task {
	var best *Task
	for _, t := range m.tasks {
		if !t.Pending() || t.deadline > target {
			continue
		}
		if best == nil || t.deadline < best.deadline ||
			(t.deadline == best.deadline && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) compact() {
	kept := m.tasks[:0]
	for _, t := range m.tasks {
		if t.Pending() {
			kept = append(kept, t)
		}
	}
	m.tasks = kept
}
