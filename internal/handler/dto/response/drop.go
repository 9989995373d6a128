package response

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"dropdeck/internal/usecase/queries"
	"dropdeck/internal/usecase/readmodel"
)

type DropResponse struct {
	ID              uuid.UUID `json:"id"`
	ProductID       string    `json:"product_id"`
	Title           string    `json:"title"`
	ThumbnailURL    string    `json:"thumbnail_url,omitempty"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type DropPageResponse struct {
	Items      []*DropResponse `json:"items"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

type ScheduleResponse struct {
	ScheduledCount int    `json:"scheduled_count"`
	Message        string `json:"message"`
}

type StopAndClearResponse struct {
	QueuedRemoved   int64 `json:"queued_removed"`
	ActiveCompleted bool  `json:"active_completed"`
	SettingsReset   bool  `json:"settings_reset"`
}

type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}

func FromDropRM(rm *readmodel.DropRM) *DropResponse {
	if rm == nil {
		return nil
	}
	var resp DropResponse
	_ = copier.Copy(&resp, rm)
	resp.Status = string(rm.Status)
	return &resp
}

func FromDropRMs(rms []*readmodel.DropRM) []*DropResponse {
	out := make([]*DropResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromDropRM(rm)
	}
	return out
}

func FromScheduledDrops(rms []*readmodel.DropRM) ScheduleResponse {
	n := len(rms)
	msg := fmt.Sprintf("Scheduled %d drops", n)
	switch n {
	case 0:
		msg = "No new drops to schedule"
	case 1:
		msg = "Scheduled 1 drop"
	}
	return ScheduleResponse{ScheduledCount: n, Message: msg}
}

func FromDropPage(page queries.DropPage) DropPageResponse {
	return DropPageResponse{
		Items:      FromDropRMs(page.Items),
		TotalCount: page.TotalCount,
		Page:       page.Page,
		Limit:      page.Limit,
	}
}
