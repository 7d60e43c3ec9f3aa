// Package mailbox provides a single-slot job buffer with latest-wins
// semantics. A burst of backup triggers collapses into one pending job, so
// the worker never backs up the same database state twice in a row.
package mailbox

import "sync"

// Mailbox holds at most one pending job. Put overwrites any existing job
// and never blocks; Take blocks until a job is available or the mailbox is
// closed.
type Mailbox[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	job    *T
	closed bool
}

func New[T any]() *Mailbox[T] {
	m := &Mailbox[T]{}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Put stores a job, replacing any job already waiting.
func (m *Mailbox[T]) Put(j T) {
	m.mu.Lock()
	m.job = &j
	m.mu.Unlock()
	m.cond.Signal()
}

// Take blocks until a job is available, then returns it and clears the slot.
// The second return is false only when the mailbox is closed and empty;
// a job already in the slot is still delivered after Close.
func (m *Mailbox[T]) Take() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for m.job == nil && !m.closed {
		m.cond.Wait()
	}

	if m.job == nil {
		var zero T
		return zero, false
	}

	j := *m.job
	m.job = nil
	return j, true
}

// TryTake returns the pending job, or nil without blocking.
func (m *Mailbox[T]) TryTake() *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	j := m.job
	m.job = nil
	return j
}

// Close wakes every blocked Take.
func (m *Mailbox[T]) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.cond.Broadcast()
}
