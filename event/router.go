package event

import (
	"sync"
)

// Handler receives one event on the frame loop goroutine
type Handler func(Event)

// Router dispatches queued input events to scoped subscriptions
//
// Architecture:
//   - Producers Push into the queue from any goroutine
//   - DispatchAll runs once per frame on the loop goroutine, before the update
//   - Handlers for a type run in subscription order
//   - A subscription lives until Cancel; no global listeners exist
type Router struct {
	queue *Queue

	mu     sync.Mutex
	nextID uint64
	subs   map[Type][]*Subscription
}

// Subscription is the handle returned by Subscribe
type Subscription struct {
	router  *Router
	typ     Type
	id      uint64
	handler Handler
	once    sync.Once
}

// NewRouter creates a router with its own queue
func NewRouter() *Router {
	return &Router{
		queue: NewQueue(),
		subs:  make(map[Type][]*Subscription),
	}
}

// Push enqueues an event for the next dispatch
func (r *Router) Push(ev Event) {
	r.queue.Push(ev)
}

// Subscribe registers handler for typ until the returned subscription is cancelled
func (r *Router) Subscribe(typ Type, handler Handler) *Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	s := &Subscription{router: r, typ: typ, id: r.nextID, handler: handler}
	r.subs[typ] = append(r.subs[typ], s)
	return s
}

// Cancel removes the subscription, safe to call more than once
func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		r := s.router
		r.mu.Lock()
		defer r.mu.Unlock()
		list := r.subs[s.typ]
		for i, other := range list {
			if other.id == s.id {
				r.subs[s.typ] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
	})
}

// DispatchAll consumes pending events and routes them, returns the number consumed
func (r *Router) DispatchAll() int {
	events := r.queue.Consume()
	for _, ev := range events {
		r.Dispatch(ev)
	}
	return len(events)
}

// Dispatch delivers ev immediately to current subscribers of its type
func (r *Router) Dispatch(ev Event) {
	r.mu.Lock()
	handlers := make([]Handler, 0, len(r.subs[ev.Type]))
	for _, s := range r.subs[ev.Type] {
		handlers = append(handlers, s.handler)
	}
	r.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

// QueueStats reports merged and dropped input events
func (r *Router) QueueStats() (merged, dropped uint64) {
	return r.queue.Stats()
}

// Subscribers returns the live subscription count for typ
func (r *Router) Subscribers(typ Type) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs[typ])
}
