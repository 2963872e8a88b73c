package handler

import (
	"encoding/json"
	"io"

	"studybuddy/services"
	"studybuddy/utils"

	"github.com/gin-gonic/gin"
)

// FeedHandler streams the user's note change feed over server-sent
// events. The subscription is released when the client disconnects.
func FeedHandler(c *gin.Context, feed *services.NoteFeed) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	events, cancel := feed.Subscribe(c.Request.Context(), userID)
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			data, err := json.Marshal(event)
			if err != nil {
				return true
			}
			c.SSEvent(event.Type, string(data))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
