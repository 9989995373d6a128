package drop

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
	ErrEmptyProductRef = errors.New("product reference is required")
	ErrEmptyShop       = errors.New("shop is required")
	ErrInvalidStatus   = errors.New("invalid drop status")
)

type Status string

const (
	StatusQueued    Status = "queued"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusQueued, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// CanTransition encodes the one-way lifecycle: queued → active → completed.
func (s Status) CanTransition(to Status) bool {
	switch {
	case s == StatusQueued && to == StatusActive:
		return true
	case s == StatusActive && to == StatusCompleted:
		return true
	}
	return false
}

// Drop is one scheduled occurrence of a product. Title and thumbnail are
// snapshots taken at scheduling time and never refreshed.
type Drop struct {
	id              uuid.UUID
	shop            string
	productID       string
	title           string
	thumbnailURL    string
	startTime       time.Time
	endTime         time.Time
	durationMinutes int
	status          Status
	createdAt       time.Time
}

func NewDrop(shop, productID, title, thumbnailURL string, startTime time.Time, durationMinutes int) (*Drop, error) {
	if shop == "" {
		return nil, ErrEmptyShop
	}
	if productID == "" {
		return nil, ErrEmptyProductRef
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	start := startTime.UTC()
	return &Drop{
		id:              uuid.New(),
		shop:            shop,
		productID:       productID,
		title:           title,
		thumbnailURL:    thumbnailURL,
		startTime:       start,
		endTime:         start.Add(time.Duration(durationMinutes) * time.Minute),
		durationMinutes: durationMinutes,
		status:          StatusQueued,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	shop, productID, title, thumbnailURL string,
	startTime, endTime time.Time,
	durationMinutes int,
	status Status,
	createdAt time.Time,
) *Drop {
	return &Drop{
		id:              id,
		shop:            shop,
		productID:       productID,
		title:           title,
		thumbnailURL:    thumbnailURL,
		startTime:       startTime,
		endTime:         endTime,
		durationMinutes: durationMinutes,
		status:          status,
		createdAt:       createdAt,
	}
}

// Window returns the promotion window for a drop activated at now: the start is
// reset to the promotion instant and the end recomputed so the configured
// duration is preserved.
func (d *Drop) Window(now time.Time) (start, end time.Time) {
	start = now.UTC()
	return start, start.Add(time.Duration(d.durationMinutes) * time.Minute)
}

func (d *Drop) IsDue(now time.Time) bool {
	return d.status == StatusQueued && !d.startTime.After(now)
}

func (d *Drop) HasExpired(now time.Time) bool {
	return d.status == StatusActive && !d.endTime.After(now)
}

func (d *Drop) ID() uuid.UUID        { return d.id }
func (d *Drop) Shop() string         { return d.shop }
func (d *Drop) ProductID() string    { return d.productID }
func (d *Drop) Title() string        { return d.title }
func (d *Drop) ThumbnailURL() string { return d.thumbnailURL }
func (d *Drop) StartTime() time.Time { return d.startTime }
func (d *Drop) EndTime() time.Time   { return d.endTime }
func (d *Drop) DurationMinutes() int { return d.durationMinutes }
func (d *Drop) Status() Status       { return d.status }
func (d *Drop) CreatedAt() time.Time { return d.createdAt }
