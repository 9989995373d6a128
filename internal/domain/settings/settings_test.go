//go:build unit

package settings_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dropdeck/internal/domain/settings"
)

func TestDefaults(t *testing.T) {
	s := settings.Defaults("shop.example.com")
	assert.Equal(t, "shop.example.com", s.Shop)
	assert.Equal(t, "10:00", s.DropTime)
	assert.Equal(t, 60, s.DefaultDurationMinutes)
	assert.Nil(t, s.QueuedCollectionID)
	assert.Nil(t, s.DefaultDropDate)
}

func TestApply(t *testing.T) {
	collection := "gid://shopify/Collection/42"
	dropTime := "18:30"
	duration := 15
	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	base := settings.Defaults("shop.example.com")

	t.Run("nil fields leave current values", func(t *testing.T) {
		next := base.Apply(settings.Patch{})
		assert.Equal(t, base, next)
	})

	t.Run("set fields overwrite", func(t *testing.T) {
		next := base.Apply(settings.Patch{
			QueuedCollectionID:     &collection,
			DropTime:               &dropTime,
			DefaultDurationMinutes: &duration,
			DefaultDropDate:        &date,
		})
		assert.Equal(t, &collection, next.QueuedCollectionID)
		assert.Equal(t, "18:30", next.DropTime)
		assert.Equal(t, 15, next.DefaultDurationMinutes)
		assert.Equal(t, &date, next.DefaultDropDate)
	})

	t.Run("clear flags null out nullable fields", func(t *testing.T) {
		populated := base.Apply(settings.Patch{QueuedCollectionID: &collection, DefaultDropDate: &date})
		next := populated.Apply(settings.Patch{ClearQueuedCollection: true, ClearDefaultDropDate: true})
		assert.Nil(t, next.QueuedCollectionID)
		assert.Nil(t, next.DefaultDropDate)
	})

	t.Run("clear wins over set in the same patch", func(t *testing.T) {
		next := base.Apply(settings.Patch{QueuedCollectionID: &collection, ClearQueuedCollection: true})
		assert.Nil(t, next.QueuedCollectionID)
	})
}
