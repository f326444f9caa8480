package middleware

import (
	"github.com/gin-gonic/gin"

	"teamdash/domain/nav"
)

const navStateKey = "nav_state"

// TrackRoute stores a per-request navigation state derived from the request
// path, so page handlers can style the header without global state.
func TrackRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(navStateKey, nav.NewState(nav.Normalize(c.Request.URL.Path)))
		c.Next()
	}
}

// NavState returns the navigation state set by TrackRoute, or a state for
// the request path when the middleware did not run.
func NavState(c *gin.Context) *nav.State {
	if v, ok := c.Get(navStateKey); ok {
		if state, ok := v.(*nav.State); ok {
			return state
		}
	}
	return nav.NewState(nav.Normalize(c.Request.URL.Path))
}
