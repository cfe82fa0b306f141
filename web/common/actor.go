package common

import "github.com/gin-gonic/gin"

// Actor returns the authenticated user id attached by the identity
// middleware. Anonymous requests audit as uid 0.
func Actor(c *gin.Context) int64 {
	if uid, ok := c.Get("uid"); ok {
		if id, ok := uid.(int64); ok {
			return id
		}
	}
	return 0
}
