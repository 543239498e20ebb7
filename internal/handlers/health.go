package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/shortlyhq/shortly-backend/internal/database"
)

// HealthHandler reports database and cache connectivity.
type HealthHandler struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewHealthHandler(db *gorm.DB, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, rdb: rdb}
}

func (h *HealthHandler) Check(c *gin.Context) {
	dbStatus := gin.H{"status": "success", "message": "Database connected"}
	if err := database.Ping(h.db); err != nil {
		dbStatus = gin.H{"status": "error", "message": "Database connection failed: " + err.Error()}
	}

	redisStatus := "ok"
	if h.rdb == nil {
		redisStatus = "not configured"
	} else if _, err := h.rdb.Ping(c.Request.Context()).Result(); err != nil {
		redisStatus = "error"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  dbStatus,
		"redis":     redisStatus,
	})
}
