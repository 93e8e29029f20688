package core

import "sync/atomic"

// eventBuffer bounds the per-connection outbound queue. A connection whose
// queue saturates is treated the same as one whose socket broke: dead.
const eventBuffer = 32

// Client is one live participant: a nickname bound to a room, with an
// outbound event queue drained by the transport's writer goroutine.
type Client struct {
	Nickname string
	Room     string

	events chan *Event
	closed atomic.Bool
}

// NewClient constructs a client for the given room and nickname.
func NewClient(room, nickname string) *Client {
	return &Client{
		Nickname: nickname,
		Room:     room,
		events:   make(chan *Event, eventBuffer),
	}
}

// Events returns the outbound queue for the transport writer to drain.
func (c *Client) Events() <-chan *Event {
	return c.events
}

// Close marks the client dead. Subsequent deliveries are refused and the
// next broadcast prunes it from the registry.
func (c *Client) Close() {
	c.closed.Store(true)
}

// Deliver enqueues an event without blocking. Returns false if the client
// is dead or its queue is full, in which case the client is marked dead.
func (c *Client) Deliver(ev *Event) bool {
	if c.closed.Load() {
		return false
	}
	select {
	case c.events <- ev:
		return true
	default:
		c.closed.Store(true)
		return false
	}
}
