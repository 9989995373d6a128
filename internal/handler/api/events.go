package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"dropdeck/internal/domain/session"
	"dropdeck/internal/engine"
	"dropdeck/internal/handler/httperr"
	"dropdeck/internal/handler/middleware"
)

// EventSubscriber is satisfied by the engine registry.
type EventSubscriber interface {
	Subscribe(sess session.Session) (<-chan engine.Event, func(), error)
}

type EventHandler struct {
	subscriber EventSubscriber
}

func NewEventHandler(subscriber EventSubscriber) *EventHandler {
	return &EventHandler{subscriber: subscriber}
}

// @Summary Subscribe to drop events
// @Description Server-sent event stream of lifecycle events for the shop
// @Tags events
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200
// @Failure 401 {object} httperr.Response
// @Router /events [get]
func (h *EventHandler) Stream(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	events, cancel, err := h.subscriber.Subscribe(sess)
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Event stream unavailable")
		return
	}
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	// Opening event confirms the stream before the first tick.
	c.SSEvent(engine.EventHeartbeat, nil)
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()
	c.Stream(func(_ io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case ev, open := <-events:
			if !open {
				return false
			}
			c.SSEvent(ev.Type, ev.Payload)
			return true
		}
	})
}
