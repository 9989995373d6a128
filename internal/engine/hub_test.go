//go:build unit

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dropdeck/internal/engine"
)

func TestHubRooms(t *testing.T) {
	hub := engine.NewHub()

	a1, leaveA1 := hub.Join("a.example.com")
	a2, leaveA2 := hub.Join("a.example.com")
	b1, leaveB1 := hub.Join("b.example.com")
	defer leaveB1()

	assert.Equal(t, 2, hub.RoomSize("a.example.com"))
	assert.Equal(t, 1, hub.RoomSize("b.example.com"))

	hub.Broadcast("a.example.com", engine.Event{Type: engine.EventRefreshNeeded})

	assert.Len(t, drainEvents(a1), 1)
	assert.Len(t, drainEvents(a2), 1)
	assert.Empty(t, drainEvents(b1))

	leaveA1()
	leaveA1() // idempotent
	assert.Equal(t, 1, hub.RoomSize("a.example.com"))

	leaveA2()
	assert.Equal(t, 0, hub.RoomSize("a.example.com"))
}

func TestHubSlowSubscriberDoesNotBlock(t *testing.T) {
	hub := engine.NewHub()
	ch, leave := hub.Join("a.example.com")
	defer leave()

	// Overfill the buffer; broadcasts must not block.
	for range [64]struct{}{} {
		hub.Broadcast("a.example.com", engine.Event{Type: engine.EventHeartbeat})
	}

	assert.NotEmpty(t, drainEvents(ch))
}
