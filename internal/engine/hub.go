package engine

import (
	"sync"
)

// subscriberBuffer bounds each subscriber channel; a slow consumer loses
// events rather than blocking the lifecycle loop.
const subscriberBuffer = 16

// Hub fans events out to per-shop subscriber rooms.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[chan Event]struct{})}
}

// Join adds a subscriber to the shop's room and returns its event channel plus
// a leave function. Leave is idempotent.
func (h *Hub) Join(shop string) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	room, ok := h.rooms[shop]
	if !ok {
		room = make(map[chan Event]struct{})
		h.rooms[shop] = room
	}
	room[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	leave := func() {
		once.Do(func() {
			h.mu.Lock()
			if room, ok := h.rooms[shop]; ok {
				delete(room, ch)
				if len(room) == 0 {
					delete(h.rooms, shop)
				}
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, leave
}

// Broadcast delivers the event to every subscriber of the shop without
// blocking; full channels are skipped.
func (h *Hub) Broadcast(shop string, ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.rooms[shop] {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (h *Hub) RoomSize(shop string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[shop])
}
