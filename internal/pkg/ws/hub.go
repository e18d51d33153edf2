package ws

import (
	"sync"

	"marketplace/pkg/logger"
)

// Conn is the writable side of a subscriber connection. gorilla's
// *websocket.Conn satisfies it.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

// Envelope is the wire frame pushed to every subscriber of a topic.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// subscriber wraps a connection with its own write lock. gorilla allows a
// single concurrent writer per connection, so all frames to one conn are
// serialized here regardless of which publisher goroutine sends them.
type subscriber struct {
	mu     sync.Mutex
	conn   Conn
	topics map[string]struct{}
}

func (s *subscriber) write(envelope Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(envelope)
}

// Hub keeps topic rooms of live connections. Fan-out is at-most-once and
// unbuffered: a connection that fails a write is closed and dropped from
// every room it joined.
type Hub struct {
	log logger.Logger

	mu    sync.RWMutex
	rooms map[string]map[*subscriber]struct{}
	subs  map[Conn]*subscriber
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{
		log:   log,
		rooms: make(map[string]map[*subscriber]struct{}),
		subs:  make(map[Conn]*subscriber),
	}
}

func (h *Hub) Join(conn Conn, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.subs[conn]
	if !ok {
		sub = &subscriber{
			conn:   conn,
			topics: make(map[string]struct{}),
		}
		h.subs[conn] = sub
	}
	sub.topics[topic] = struct{}{}

	room, ok := h.rooms[topic]
	if !ok {
		room = make(map[*subscriber]struct{})
		h.rooms[topic] = room
	}
	room[sub] = struct{}{}
}

func (h *Hub) Leave(conn Conn, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.subs[conn]
	if !ok {
		return
	}
	h.evict(sub, topic)
	if len(sub.topics) == 0 {
		delete(h.subs, conn)
	}
}

// evict removes the subscriber from one room. Caller holds h.mu.
func (h *Hub) evict(sub *subscriber, topic string) {
	delete(sub.topics, topic)

	room, ok := h.rooms[topic]
	if !ok {
		return
	}
	delete(room, sub)
	if len(room) == 0 {
		delete(h.rooms, topic)
	}
}

// drop closes a failed connection and removes it from every joined room.
func (h *Hub) drop(sub *subscriber) {
	_ = sub.conn.Close()

	h.mu.Lock()
	defer h.mu.Unlock()

	for topic := range sub.topics {
		h.evict(sub, topic)
	}
	delete(h.subs, sub.conn)
}

func (h *Hub) Publish(topic, event string, payload any) {
	envelope := Envelope{
		Event: event,
		Data:  payload,
	}

	h.mu.RLock()
	room := h.rooms[topic]
	subs := make([]*subscriber, 0, len(room))
	for sub := range room {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	var dead []*subscriber
	for _, sub := range subs {
		if err := sub.write(envelope); err != nil {
			h.log.Warn("Dropping dead tracking subscriber",
				logger.NewField("topic", topic),
				logger.NewField("error", err),
			)
			dead = append(dead, sub)
		}
	}

	for _, sub := range dead {
		h.drop(sub)
	}
}

// Subscribers reports the current room size, used by metrics and tests.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[topic])
}
