package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gamereviews-backend/internal/shared/apierr"
	"gamereviews-backend/internal/shared/middleware"
	"gamereviews-backend/pkg/container"
)

//go:embed endpoints.json
var endpointsJSON []byte

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.RateLimit(
			c.Cache,
			c.Config.Redis.RateLimit,
			time.Duration(c.Config.Redis.RateLimitWindow)*time.Second,
		),
	)

	api := router.Group("/api")
	{
		api.GET("", endpointsHandler())
		api.GET("/health", healthCheckHandler(c))

		setupCategoryRoutes(api, c)
		setupUserRoutes(api, c)
		setupReviewRoutes(api, c)
		setupCommentRoutes(api, c)
	}

	// Any unregistered path, under /api or not, gets the same answer.
	router.NoRoute(func(c *gin.Context) {
		apierr.Respond(c, apierr.RouteNotFound())
	})

	return router
}

func setupCategoryRoutes(api *gin.RouterGroup, c *container.Container) {
	categories := api.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.ListCategories)
		categories.POST("", c.CategoryHandler.CreateCategory)
	}
}

func setupUserRoutes(api *gin.RouterGroup, c *container.Container) {
	users := api.Group("/users")
	{
		users.GET("", c.UserHandler.ListUsers)
		users.POST("", c.UserHandler.CreateUser)
		users.GET("/:username", c.UserHandler.GetUser)
		users.PATCH("/:username", c.UserHandler.UpdateUser)
	}
}

func setupReviewRoutes(api *gin.RouterGroup, c *container.Container) {
	reviews := api.Group("/reviews")
	{
		reviews.GET("", c.ReviewHandler.ListReviews)
		reviews.POST("", c.ReviewHandler.CreateReview)
		reviews.GET("/:review_id", c.ReviewHandler.GetReview)
		reviews.PATCH("/:review_id", c.ReviewHandler.UpdateReview)
		reviews.DELETE("/:review_id", c.ReviewHandler.DeleteReview)

		reviews.GET("/:review_id/comments", c.CommentHandler.ListComments)
		reviews.POST("/:review_id/comments", c.CommentHandler.CreateComment)
	}
}

func setupCommentRoutes(api *gin.RouterGroup, c *container.Container) {
	comments := api.Group("/comments")
	{
		comments.PATCH("/:comment_id", c.CommentHandler.UpdateComment)
		comments.DELETE("/:comment_id", c.CommentHandler.DeleteComment)
	}
}

// endpointsHandler serves the API self-description embedded at build
// time, so GET /api never touches the database. The document is the
// whole response body, not wrapped in an envelope.
func endpointsHandler() gin.HandlerFunc {
	var endpoints map[string]any
	if err := json.Unmarshal(endpointsJSON, &endpoints); err != nil {
		panic(fmt.Sprintf("invalid endpoints.json: %v", err))
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, endpoints)
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
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		redisStatus := "disabled"
		if appCtx.Cache != nil {
			redisStatus = "ok"
			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
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
