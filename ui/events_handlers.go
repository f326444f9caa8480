package ui

import (
	"encoding/json"
	"io"
	"time"

	"github.com/gin-gonic/gin"
)

const pingInterval = 30 * time.Second

// handleEvents streams roster changes to the page as server-sent events
func (s *Server) handleEvents(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	stream, cancel := s.events.Subscribe()
	defer cancel()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	// send headers now so clients see the stream open before the first event
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-stream:
			if !ok {
				return false
			}
			payload, err := json.Marshal(event)
			if err != nil {
				s.log.Warn("failed to marshal roster event", "error", err)
				return true
			}
			c.SSEvent("roster", string(payload))
			return true

		case <-ticker.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
			return true

		case <-ctx.Done():
			return false
		}
	})
}
