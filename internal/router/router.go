package router

import (
	"net/http"
	"time"

	"suitsize/internal/middleware"
	"suitsize/internal/sizing"
	"suitsize/internal/wedding"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func New(
	sizingHandler *sizing.Handler,
	weddingHandler *wedding.Handler,
	limiter *middleware.RateLimiter,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.Metrics())

	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}
	if len(corsOrigins) > 0 {
		corsConfig.AllowOrigins = corsOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	// API index route
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "SuitSize API",
			"endpoints": gin.H{
				"recommend":         "POST /api/recommend",
				"wedding_recommend": "POST /api/wedding/recommend",
				"wedding_analyze":   "POST /api/wedding/analyze",
				"health":            "GET /api/health",
				"stats":             "GET /api/stats",
				"cache_clear":       "POST /api/cache/clear",
				"metrics":           "GET /metrics",
			},
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", sizingHandler.Health)
		api.GET("/stats", sizingHandler.Stats)
		api.POST("/cache/clear", sizingHandler.ClearCache)

		// Only the recommendation endpoints are rate limited.
		limited := api.Group("")
		limited.Use(middleware.RateLimit(limiter))
		{
			limited.POST("/recommend", sizingHandler.Recommend)
			limited.POST("/wedding/recommend", weddingHandler.Recommend)
			limited.POST("/wedding/analyze", weddingHandler.Analyze)
		}
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
