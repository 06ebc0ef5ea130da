package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookmanager/internal/infrastructure/database"
	"bookmanager/internal/shared/middleware"
	"bookmanager/internal/shared/response"
	"bookmanager/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.GET("/health", healthCheckHandler(c))

	setupAuthorRoutes(router, c)
	setupBookRoutes(router, c)

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, fmt.Sprintf("route not found: %s %s", c.Request.Method, c.Request.URL.Path))
	})

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(r gin.IRouter, c *container.Container) {
	authors := r.Group("/authors")
	{
		authors.GET("/list", c.AuthorHandler.List)
		authors.GET("/:author_id/books", c.BookHandler.ListByAuthor)
		authors.POST("", c.AuthorHandler.Create)
		authors.PUT("", c.AuthorHandler.Update)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(r gin.IRouter, c *container.Container) {
	books := r.Group("/books")
	{
		books.POST("", c.BookHandler.Create)
		books.PUT("", c.BookHandler.Update)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================

// pinger is satisfied by the database and the cache
type pinger interface {
	Ping(ctx context.Context) error
}

// dbChecker is the database side of /health
type dbChecker interface {
	pinger
	Stats() (*database.PoolStats, error)
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	var db dbChecker
	if appCtx.DB != nil {
		db = appCtx.DB
	}
	return healthCheck(appCtx.Config.App.Version, appCtx.Config.Redis.Enabled, db, appCtx.Cache)
}

func healthCheck(version string, cacheEnabled bool, db dbChecker, cache pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		// Check database
		dbStatus := "ok"
		if db == nil {
			dbStatus = "disconnected"
		} else if err := db.Ping(ctx); err != nil {
			dbStatus = fmt.Sprintf("error: %v", err)
		}

		// Check redis; never fails the check
		redisStatus := "disabled"
		if cacheEnabled && cache != nil {
			redisStatus = "ok"
			if err := cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		services := gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}
		if dbStatus == "ok" {
			if stats, err := db.Stats(); err == nil {
				services["database_pool"] = stats
			}
		}
		health["services"] = services

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
