package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-api/internal/shared/middleware"
	"library-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health stays open so probes do not need the API key.
		v1.GET("/health", healthCheckHandler(c))

		setupBookRoutes(v1, c)
	}

	return router
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	books.Use(middleware.APIKey(c.Checker))
	{
		books.POST("", c.BookHandler.Create)
		books.GET("", c.BookHandler.List)
		books.GET("/:isbn", c.BookHandler.GetByISBN)
		books.PUT("/:isbn", c.BookHandler.Update)
		books.DELETE("/:isbn", c.BookHandler.Delete)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = "error"
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = "error"
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
