// Package mailbox provides a single-slot latest-wins buffer. It is NOT a
// queue: a burst of Put calls collapses into one pending value, which is
// exactly the semantics a sweep trigger needs.
package mailbox

import "sync"

type Mailbox[T any] struct {
	mu   sync.Mutex
	cond *sync.Cond
	val  *T
}

// New creates an empty mailbox.
func New[T any]() *Mailbox[T] {
	m := &Mailbox[T]{}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Put stores v, replacing any pending value. It never blocks.
func (m *Mailbox[T]) Put(v T) {
	m.mu.Lock()
	m.val = &v
	m.mu.Unlock()
	m.cond.Signal()
}

// Take blocks until a value is available, then returns it and clears the
// slot.
func (m *Mailbox[T]) Take() T {
	m.mu.Lock()
	defer m.mu.Unlock()

	for m.val == nil {
		m.cond.Wait()
	}

	v := *m.val
	m.val = nil
	return v
}

// TryTake returns the pending value or nil without blocking.
func (m *Mailbox[T]) TryTake() *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := m.val
	m.val = nil
	return v
}
