package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Idempotency replays the cached response for a repeated
// Idempotency-Key on POST routes where creating twice is expensive
// (checkout sessions). A short-lived lock rejects a second in-flight
// request with the same key. No-op when Redis is not configured.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" {
			c.Next()
			return
		}

		// Keys must never be shared across clients: one caller's cached
		// response must not replay for another caller reusing the same
		// Idempotency-Key value.
		principal := c.GetString(EmailKey)
		if principal == "" {
			principal = payloadEmail(c)
		}
		if principal == "" {
			principal = c.ClientIP()
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), principal, idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var cached any
			if json.Unmarshal([]byte(val), &cached) == nil {
				c.AbortWithStatusJSON(http.StatusOK, cached)
				return
			}
		}

		// Lock expires on its own if the server dies mid-request.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": "A request with this idempotency key is still processing",
			})
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}

// payloadEmail peeks at the request body for an email field, restoring
// the body so the handler can still bind it. Unauthenticated routes get
// their key principal this way.
func payloadEmail(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var payload struct {
		Email string `json:"email"`
	}
	if json.Unmarshal(body, &payload) != nil {
		return ""
	}
	return payload.Email
}
