package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"nfcunha/porthole/core/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// ViewerHandler handles the embedded viewer's navigation requests.
type ViewerHandler struct {
	dashboard *service.Dashboard
	upgrader  websocket.Upgrader
}

// NewViewerHandler creates a new viewer handler.
func NewViewerHandler(dashboard *service.Dashboard) *ViewerHandler {
	return &ViewerHandler{
		dashboard: dashboard,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// GetViewer handles GET /portal/viewer
func (h *ViewerHandler) GetViewer(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Viewer())
}

// Visit handles POST /portal/viewer/visit
func (h *ViewerHandler) Visit(c *gin.Context) {
	var req struct {
		URL string `json:"url" form:"url" binding:"required"`
	}

	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid request body",
			"detail": err.Error(),
		})
		return
	}

	state := h.dashboard.Visit(req.URL)
	if redirectForm(c) {
		return
	}
	c.JSON(http.StatusOK, state)
}

// Back handles POST /portal/viewer/back
// At the oldest entry nothing changes and the current state is returned.
func (h *ViewerHandler) Back(c *gin.Context) {
	state, _ := h.dashboard.Back()
	if redirectForm(c) {
		return
	}
	c.JSON(http.StatusOK, state)
}

// Forward handles POST /portal/viewer/forward
func (h *ViewerHandler) Forward(c *gin.Context) {
	state, _ := h.dashboard.Forward()
	if redirectForm(c) {
		return
	}
	c.JSON(http.StatusOK, state)
}

// Refresh handles POST /portal/viewer/refresh
func (h *ViewerHandler) Refresh(c *gin.Context) {
	state := h.dashboard.Refresh()
	if redirectForm(c) {
		return
	}
	c.JSON(http.StatusOK, state)
}

// StreamViewer handles GET /portal/viewer/ws (WebSocket)
// Sends the current viewer state on connect and again after every change.
func (h *ViewerHandler) StreamViewer(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade to WebSocket: %v", err)
		return
	}
	defer conn.Close()

	updates, unsubscribe := h.dashboard.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Handle WebSocket close messages
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	if err := writeState(conn, h.dashboard.Viewer()); err != nil {
		log.Printf("Failed to write viewer state: %v", err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-updates:
			if !ok {
				return
			}
			if err := writeState(conn, state); err != nil {
				log.Printf("Failed to write viewer state: %v", err)
				return
			}
		}
	}
}

func writeState(conn *websocket.Conn, state service.ViewerState) error {
	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteJSON(state)
}
