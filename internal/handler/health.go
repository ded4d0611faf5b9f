package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports whether the two backing stores answer a ping: postgres,
// where every record lives, and redis, which only caches report responses.
// A degraded cache still takes the whole check to 503 so the deploy
// pipeline notices before the first slow report does.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		postgres := "up"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			postgres = "down"
		}

		cache := "up"
		if err := rdb.Ping(ctx).Err(); err != nil {
			cache = "down"
		}

		code := http.StatusOK
		if postgres == "down" || cache == "down" {
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":   http.StatusText(code),
			"postgres": postgres,
			"redis":    cache,
		})
	}
}
