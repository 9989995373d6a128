package readmodel

import (
	"time"

	"github.com/google/uuid"

	"dropdeck/internal/domain/drop"
)

// DropRM is the persisted drop row as read back from the store.
type DropRM struct {
	ID              uuid.UUID
	Shop            string
	ProductID       string
	Title           string
	ThumbnailURL    string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	Status          drop.Status
	CreatedAt       time.Time
}
