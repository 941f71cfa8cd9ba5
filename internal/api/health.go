package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// HealthHandler pings both backing stores and reports their state. The
// endpoint itself always answers; "degraded" means a dependency is down.
func HealthHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		dbStatus := "connected"
		redisStatus := "connected"

		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			dbStatus = "unavailable"
			status = "degraded"
		}
		if err := rdb.Ping(c.Request.Context()).Err(); err != nil {
			redisStatus = "unavailable"
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   status,
			"database": dbStatus,
			"redis":    redisStatus,
		})
	}
}
