package routes

import (
	"fmt"
	"net/http"
	"time"

	"tripplanner/handlers"
	"tripplanner/middleware"
	"tripplanner/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options holds the router level settings.
type Options struct {
	JWTSecret         []byte
	MaxRequestsPerMin int
	// TrustedProxies may set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string
}

// RegisterItineraryRoutes registers itinerary generation and retrieval.
func RegisterItineraryRoutes(r gin.IRouter, hb *handlers.HandlerBundle) {
	api := r.Group("/api/itinerary")
	{
		api.POST("", hb.Itinerary.Generate)
		api.GET("/:id", hb.Itinerary.Get)
		api.GET("/:id/export", hb.Itinerary.Export)

		// Listing is per user and needs a token.
		api.GET("", middleware.RequireUser(), hb.Itinerary.List)
	}
}

// RegisterSearchRoutes registers nearby recommendations and transport lookup.
func RegisterSearchRoutes(r gin.IRouter, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/hotels", hb.Search.Hotels)
		api.GET("/hotels/:id", hb.Search.Hotel)
		api.GET("/food", hb.Search.Food)
		api.GET("/food/:id", hb.Search.Restaurant)
		api.GET("/transport", hb.Transport.Options)
		api.GET("/transport/pricing", hb.Transport.Pricing)
		api.GET("/transport/availability", hb.Transport.Availability)
	}
}

// RegisterHealthRoute registers health and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Yatra Sathi", "services": utils.GetHealthStatus()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) error {
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return fmt.Errorf("invalid trusted proxies: %w", err)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())

	RegisterHealthRoute(r)

	// Health and metrics stay outside the rate limiter.
	api := r.Group("", middleware.RateLimitMiddleware(opts.MaxRequestsPerMin), middleware.OptionalAuth(opts.JWTSecret))
	RegisterItineraryRoutes(api, hb)
	RegisterSearchRoutes(api, hb)
	return nil
}
