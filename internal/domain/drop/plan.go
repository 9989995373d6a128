package drop

import (
	"time"
)

// ProductSnapshot is what the planner needs from the catalog: identity plus the
// title/thumbnail captured into the drop row.
type ProductSnapshot struct {
	ID       string
	Title    string
	ImageURL string
}

// PlanBatch lays a collection of products out on a contiguous timeline starting
// at anchor. Products already present in queuedRefs are skipped (one pending
// drop per product per shop), the rest keep the catalog's enumeration order.
// Emitted windows satisfy start_i = anchor + i*duration, end_i = start_i + duration.
func PlanBatch(shop string, products []ProductSnapshot, queuedRefs map[string]struct{}, anchor time.Time, durationMinutes int) ([]*Drop, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	duration := time.Duration(durationMinutes) * time.Minute
	anchor = anchor.UTC()

	batch := make([]*Drop, 0, len(products))
	for _, p := range products {
		if p.ID == "" {
			continue
		}
		if _, dup := queuedRefs[p.ID]; dup {
			continue
		}

		start := anchor.Add(time.Duration(len(batch)) * duration)
		d, err := NewDrop(shop, p.ID, p.Title, p.ImageURL, start, durationMinutes)
		if err != nil {
			return nil, err
		}
		batch = append(batch, d)
	}

	return batch, nil
}
