//go:build unit

package drop_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropdeck/internal/domain/drop"
)

func TestNewDrop(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("computes end time from duration", func(t *testing.T) {
		d, err := drop.NewDrop("shop.example.com", "123", "Hoodie", "", start, 90)
		require.NoError(t, err)

		assert.Equal(t, start, d.StartTime())
		assert.Equal(t, start.Add(90*time.Minute), d.EndTime())
		assert.Equal(t, drop.StatusQueued, d.Status())
		assert.NotEqual(t, d.ID().String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("normalizes start to UTC", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*3600)
		d, err := drop.NewDrop("shop.example.com", "123", "Hoodie", "", start.In(jst), 60)
		require.NoError(t, err)
		assert.Equal(t, time.UTC, d.StartTime().Location())
		assert.True(t, d.StartTime().Equal(start))
	})

	tests := []struct {
		name      string
		shop      string
		productID string
		duration  int
		wantErr   error
	}{
		{name: "empty shop", shop: "", productID: "123", duration: 60, wantErr: drop.ErrEmptyShop},
		{name: "empty product ref", shop: "shop.example.com", productID: "", duration: 60, wantErr: drop.ErrEmptyProductRef},
		{name: "zero duration", shop: "shop.example.com", productID: "123", duration: 0, wantErr: drop.ErrInvalidDuration},
		{name: "negative duration", shop: "shop.example.com", productID: "123", duration: -5, wantErr: drop.ErrInvalidDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := drop.NewDrop(tt.shop, tt.productID, "Hoodie", "", start, tt.duration)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStatusCanTransition(t *testing.T) {
	tests := []struct {
		from, to drop.Status
		want     bool
	}{
		{drop.StatusQueued, drop.StatusActive, true},
		{drop.StatusActive, drop.StatusCompleted, true},
		{drop.StatusQueued, drop.StatusCompleted, false},
		{drop.StatusCompleted, drop.StatusActive, false},
		{drop.StatusActive, drop.StatusQueued, false},
		{drop.StatusCompleted, drop.StatusQueued, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestDropTimeline(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	d, err := drop.NewDrop("shop.example.com", "123", "Hoodie", "", start, 60)
	require.NoError(t, err)

	t.Run("not due before start", func(t *testing.T) {
		assert.False(t, d.IsDue(start.Add(-time.Second)))
	})

	t.Run("due at and after start", func(t *testing.T) {
		assert.True(t, d.IsDue(start))
		assert.True(t, d.IsDue(start.Add(time.Hour)))
	})

	t.Run("window re-anchors to promotion instant", func(t *testing.T) {
		late := start.Add(25 * time.Minute)
		ws, we := d.Window(late)
		assert.Equal(t, late, ws)
		assert.Equal(t, late.Add(60*time.Minute), we)
	})
}
