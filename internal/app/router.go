package app

import (
	"counter_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/", c.health.APIRoot)
		api.GET("/health", c.health.HealthCheck)

		counter := api.Group("/counter")
		{
			counter.GET("/", c.counter.Get)
			counter.POST("/", c.counter.Increment)
			counter.POST("/reset/", c.counter.Reset)

			survey := counter.Group("/survey")
			{
				survey.GET("/questions/", c.survey.GetQuestions)
				survey.POST("/submit/", c.survey.Submit)
			}
		}
	}
}
