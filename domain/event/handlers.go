package event

import "sync"

// Handler reacts to an event on the telemetry path. Each kind of event
// has its own handler, chain-of-responsibility style.
type Handler interface {
	Handle(e DomainEvent)
}

// Counter accumulates counts per event label.
type Counter struct {
	mu     sync.Mutex
	counts map[string]uint64
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]uint64)}
}

func (c *Counter) Increment(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[label]++
}

func (c *Counter) Value(label string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[label]
}
