package middlewares

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// WriteLock serializes mutating requests. The core assumes exactly one
// logical writer at a time; when the core is exposed over HTTP the server
// must provide that mutual exclusion, and this is where it lives.
func WriteLock() gin.HandlerFunc {
	var mu sync.Mutex
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			mu.Lock()
			defer mu.Unlock()
		}
		c.Next()
	}
}
