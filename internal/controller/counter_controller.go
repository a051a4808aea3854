package controller

import (
	"counter_backend/internal/service"
	"counter_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CounterController struct {
	Service *service.CounterService
}

func NewCounterController(svc *service.CounterService) *CounterController {
	return &CounterController{Service: svc}
}

// Get returns the current click count, creating the counter on first
// access.
func (c *CounterController) Get(ctx *gin.Context) {
	state, err := c.Service.Get()
	if err != nil {
		util.InternalServerError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"count":      state.Count,
		"updated_at": state.UpdatedAt,
	})
}

// Increment adds one to the click count and returns the new value.
func (c *CounterController) Increment(ctx *gin.Context) {
	state, err := c.Service.Increment()
	if err != nil {
		util.InternalServerError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"count":      state.Count,
		"updated_at": state.UpdatedAt,
		"message":    "Counter incremented successfully",
	})
}

// Reset sets the click count back to zero.
func (c *CounterController) Reset(ctx *gin.Context) {
	state, err := c.Service.Reset()
	if err != nil {
		util.InternalServerError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"count":      state.Count,
		"updated_at": state.UpdatedAt,
		"message":    "Counter reset to zero",
	})
}
