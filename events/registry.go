// Package events provides an explicit publish/subscribe registry. Listeners are
// identified by the handle returned from Subscribe and must unsubscribe explicitly.
package events

import (
	"slices"
	"sync"
)

// Handle identifies a single subscription in a Registry.
type Handle uint64

type subscription[T any] struct {
	handle Handle
	fn     func(T)
}

// Registry fans out events of type T to subscribers in the order they subscribed.
type Registry[T any] struct {
	mu   sync.Mutex
	last Handle
	subs []subscription[T]
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Subscribe registers fn and returns the handle needed to unsubscribe it.
func (r *Registry[T]) Subscribe(fn func(T)) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last++
	r.subs = append(r.subs, subscription[T]{handle: r.last, fn: fn})
	return r.last
}

// Unsubscribe removes the subscription. It returns false if the handle is not
// registered, so calling it twice is safe.
func (r *Registry[T]) Unsubscribe(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.IndexFunc(r.subs, func(s subscription[T]) bool { return s.handle == h })
	if i < 0 {
		return false
	}
	r.subs = slices.Delete(r.subs, i, i+1)
	return true
}

// Len returns the number of active subscriptions.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// Publish calls every subscriber synchronously, in subscription order.
// Subscribers may (un)subscribe from inside the callback, such changes apply to the next Publish.
func (r *Registry[T]) Publish(ev T) {
	r.mu.Lock()
	subs := slices.Clone(r.subs)
	r.mu.Unlock()
	for _, s := range subs {
		s.fn(ev)
	}
}
