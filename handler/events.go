package handler

import (
	"net/http"
	"strconv"

	"nfcunha/porthole/core/models"

	"github.com/gin-gonic/gin"
)

// EventSource lists stored events. *repository.EventLogRepository satisfies it.
type EventSource interface {
	GetRecent(limit int) ([]*models.EventLog, error)
	GetByType(eventType string, limit int) ([]*models.EventLog, error)
}

// EventHandler handles event log requests.
type EventHandler struct {
	events EventSource
}

// NewEventHandler creates a new event handler.
func NewEventHandler(events EventSource) *EventHandler {
	return &EventHandler{events: events}
}

// ListEvents handles GET /portal/events
// Query parameters:
//   - type: string (only events of this type)
//   - limit: integer (max number of results, default 50)
func (h *EventHandler) ListEvents(c *gin.Context) {
	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Invalid limit",
				"detail": limitStr,
			})
			return
		}
		limit = parsed
	}

	var (
		events []*models.EventLog
		err    error
	)
	if eventType := c.Query("type"); eventType != "" {
		events, err = h.events.GetByType(eventType, limit)
	} else {
		events, err = h.events.GetRecent(limit)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "Failed to list events",
			"detail": err.Error(),
		})
		return
	}

	if events == nil {
		events = []*models.EventLog{}
	}
	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}
