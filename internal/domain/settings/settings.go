package settings

import "time"

const (
	DefaultDropTime        = "10:00"
	DefaultDurationMinutes = 60
)

// Settings is the per-shop configuration row. QueuedCollectionID and
// DefaultDropDate are nullable; absence of a row is represented by Defaults.
type Settings struct {
	Shop                   string
	QueuedCollectionID     *string
	DropTime               string
	DefaultDurationMinutes int
	DefaultDropDate        *time.Time
}

func Defaults(shop string) Settings {
	return Settings{
		Shop:                   shop,
		DropTime:               DefaultDropTime,
		DefaultDurationMinutes: DefaultDurationMinutes,
	}
}

// Patch holds the updatable fields; nil means "leave unchanged".
type Patch struct {
	QueuedCollectionID     *string
	DropTime               *string
	DefaultDurationMinutes *int
	DefaultDropDate        *time.Time
	ClearQueuedCollection  bool
	ClearDefaultDropDate   bool
}

func (s Settings) Apply(p Patch) Settings {
	out := s
	if p.QueuedCollectionID != nil {
		out.QueuedCollectionID = p.QueuedCollectionID
	}
	if p.ClearQueuedCollection {
		out.QueuedCollectionID = nil
	}
	if p.DropTime != nil {
		out.DropTime = *p.DropTime
	}
	if p.DefaultDurationMinutes != nil {
		out.DefaultDurationMinutes = *p.DefaultDurationMinutes
	}
	if p.DefaultDropDate != nil {
		out.DefaultDropDate = p.DefaultDropDate
	}
	if p.ClearDefaultDropDate {
		out.DefaultDropDate = nil
	}
	return out
}
