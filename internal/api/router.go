package api

import (
	"context"
	"net/http"
	"time"

	"github.com/blog-api/internal/config"
	"github.com/blog-api/internal/service"
	"github.com/blog-api/internal/validation"
	"github.com/blog-api/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(requestIDMiddleware())
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(errorMiddleware(log, cfg.Server.ExposeRawErrors))

	// Handlers
	blogHandler := NewBlogHandler(services, cfg, log)
	validator := validation.NewValidator()

	// Health check
	router.GET("/health", healthCheck(services))
	router.GET("/metrics", metricsHandler(services, log))

	// API v1
	v1 := router.Group("/v1")
	{
		blogs := v1.Group("/blogs")
		{
			blogs.GET("", blogHandler.GetBlogs)
			blogs.GET("/latest", blogHandler.GetLatestBlogs)
			blogs.GET("/:id", validator.BlogID(), blogHandler.GetBlogDetail)
			blogs.GET("/author/:authorId", blogHandler.GetBlogsByAuthor)
			blogs.POST("", validator.AddBlog(), blogHandler.PostBlog)
			blogs.PUT("/:id", validator.UpdateBlog(), blogHandler.UpdateBlog)
			blogs.DELETE("/:id", validator.DeleteBlog(), blogHandler.DeleteBlog)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Fail(http.StatusNotFound, "not found", "Route Not Found", "No route matches "+c.Request.Method+" "+c.Request.URL.Path))
	})

	return router
}

// healthCheck pings the database and reports the service status
func healthCheck(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := contextWithTimeout(c, 2*time.Second)
		defer cancel()

		status, code := "healthy", http.StatusOK
		if err := services.System.HealthCheck(ctx); err != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "blog-api",
		})
	}
}

// metricsHandler returns blog counts and connection pool stats.
// It answers 503 when the blog count cannot be read.
func metricsHandler(services *service.Services, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := contextWithTimeout(c, 2*time.Second)
		defer cancel()

		blogsCount, err := services.Blog.Count(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Failed to count blogs for metrics")
			c.JSON(http.StatusServiceUnavailable, response.Fail(http.StatusServiceUnavailable,
				http.StatusText(http.StatusServiceUnavailable), "Metrics Unavailable", "Failed to read blog count"))
			return
		}
		stats := services.System.Stats()

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"blogs":            blogsCount,
				"open_connections": stats.OpenConnections,
				"in_use":           stats.InUse,
				"idle":             stats.Idle,
				"wait_count":       stats.WaitCount,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// contextWithTimeout creates a context with timeout for handlers
func contextWithTimeout(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}
