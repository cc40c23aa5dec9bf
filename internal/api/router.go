package api

import (
	"net/http"
	"time"

	"github.com/blog-cms-api/internal/config"
	"github.com/blog-cms-api/internal/service"
	"github.com/blog-cms-api/web"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Bodies carrying fields no input type declares are rejected at decode
	// time, so handlers only ever see whitelisted fields.
	binding.EnableDecoderDisallowUnknownFields = true

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware(cfg.CORS.AllowedOrigins))

	// Handlers
	authHandler := NewAuthHandler(services, log)
	postHandler := NewPostHandler(services, log)
	categoryHandler := NewCategoryHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	authorHandler := NewAuthorHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// Auth endpoints
	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/verify", authHandler.Verify)
	}

	// Post endpoints
	posts := router.Group("/posts")
	{
		posts.POST("", postHandler.Create)
		posts.GET("", postHandler.FindAll)
		posts.GET("/:id", postHandler.FindOne)
		posts.PUT("/:id", postHandler.Update)
		posts.DELETE("/:id", postHandler.Remove)
		posts.GET("/category/:categoryId", postHandler.FindByCategory)
	}

	// Category endpoints
	categories := router.Group("/categories")
	{
		categories.POST("", categoryHandler.Create)
		categories.GET("", categoryHandler.FindAll)
		categories.GET("/:id", categoryHandler.FindOne)
		categories.PUT("/:id", categoryHandler.Update)
		categories.DELETE("/:id", categoryHandler.Remove)
	}

	// Comment endpoints
	comments := router.Group("/comments")
	{
		comments.POST("", commentHandler.Create)
		comments.GET("", commentHandler.FindAll)
		comments.GET("/:id", commentHandler.FindOne)
		comments.PUT("/:id", commentHandler.Update)
		comments.DELETE("/:id", commentHandler.Remove)
	}

	// Author endpoints
	authors := router.Group("/authors")
	{
		authors.POST("", authorHandler.Create)
		authors.GET("", authorHandler.FindAll)
		authors.GET("/:id", authorHandler.FindOne)
		authors.PUT("/:id", authorHandler.Update)
		authors.DELETE("/:id", authorHandler.Remove)
	}

	// Dashboard SPA for anything the API does not claim
	web.Register(router)

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "blog-cms-api",
	})
}
