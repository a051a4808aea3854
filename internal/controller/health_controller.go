package controller

import (
	"counter_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const apiVersion = "1.0.0"

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// APIRoot is the liveness payload the mobile app uses to test
// connectivity.
func (c *HealthController) APIRoot(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"message": "Counter App Backend API",
		"version": apiVersion,
		"status":  "running",
	})
}

func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx, err)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
		},
	})
}
