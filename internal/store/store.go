// Package store provides a small observable state container with
// synchronous subscriber notification.
package store

import "sync"

// listenerEntry holds a subscriber callback and its registration id.
type listenerEntry[S any] struct {
	id int
	fn func(S)
}

// Store holds a state value of type S and notifies subscribers on every
// update. Updates are serialized: writeMu is held across both the state
// commit and the subscriber drain, so each Patch or Replace fully notifies
// all subscribers before the next update is accepted — even with multiple
// producer goroutines, subscribers observe snapshots in commit order, one
// notification per write. Subscribers must not write back into the same
// store.
type Store[S any] struct {
	writeMu sync.Mutex

	mu        sync.Mutex
	state     S
	listeners []listenerEntry[S]
	nextID    int
}

// New creates a Store seeded with the given initial state.
func New[S any](initial S) *Store[S] {
	return &Store[S]{state: initial}
}

// State returns a copy of the current state.
func (s *Store[S]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Patch applies mutate to the current state and notifies all subscribers
// with the new full state before returning. The callback should only assign
// the fields it intends to change; untouched fields carry over.
func (s *Store[S]) Patch(mutate func(*S)) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	mutate(&s.state)
	next := s.state
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, l := range listeners {
		l.fn(next)
	}
}

// Replace swaps in next as the whole state and notifies all subscribers.
// Unlike Patch, no prior field survives.
func (s *Store[S]) Replace(next S) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.state = next
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, l := range listeners {
		l.fn(next)
	}
}

// Subscribe registers fn to be called synchronously with the new full state
// on every update. The returned function removes the subscription; it is
// safe to call more than once.
func (s *Store[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listenerEntry[S]{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// snapshotListeners copies the listener slice so callbacks run outside the
// lock. Must be called with s.mu held.
func (s *Store[S]) snapshotListeners() []listenerEntry[S] {
	out := make([]listenerEntry[S], len(s.listeners))
	copy(out, s.listeners)
	return out
}
