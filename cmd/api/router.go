package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"texarea-backend/internal/shared/middleware"
	"texarea-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupBlogRoutes(api, c)
		setupUploadRoutes(api, c)
	}

	return router
}

func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.GET("/check", middleware.AuthMiddleware(c.TokenStore), c.AuthHandler.Check)
		auth.POST("/logout", middleware.AuthMiddleware(c.TokenStore), c.AuthHandler.Logout)
	}
}

func setupBlogRoutes(api *gin.RouterGroup, c *container.Container) {
	blog := api.Group("/blog")
	{
		// Admin routes first so /admin/all is not captured by /:lang.
		admin := blog.Group("")
		admin.Use(middleware.AuthMiddleware(c.TokenStore), middleware.AdminMiddleware())
		{
			admin.GET("/admin/all", c.BlogHandler.GetAllForAdmin)
			admin.POST("", c.BlogHandler.Create)
			admin.PUT("/:id", c.BlogHandler.Update)
			admin.DELETE("/:id", c.BlogHandler.Delete)
		}

		// Public reads
		blog.GET("/:lang", c.BlogHandler.GetPublicList)
		blog.GET("/:lang/:id", c.BlogHandler.GetPublicByID)
	}
}

func setupUploadRoutes(api *gin.RouterGroup, c *container.Container) {
	uploads := api.Group("/upload")
	uploads.Use(middleware.AuthMiddleware(c.TokenStore))
	{
		uploads.POST("/single", c.UploadHandler.UploadSingle)
		uploads.POST("/multiple", c.UploadHandler.UploadMultiple)

		// Destructive and listing operations need the admin role.
		admin := uploads.Group("")
		admin.Use(middleware.AdminMiddleware())
		{
			admin.GET("/list", c.UploadHandler.List)
			admin.DELETE("/:filename", c.UploadHandler.Delete)
		}
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
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else if err := appCtx.Cache.Ping(c.Request.Context()); err != nil {
			redisStatus = fmt.Sprintf("error: %v", err)
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
