package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	intconfig "tripoptimizer/internal/config"
	h "tripoptimizer/internal/http/handlers"
	"tripoptimizer/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"
)

func NewRouter(env intconfig.Env, db *sql.DB, nrApp *newrelic.Application) *gin.Engine {
	_ = env

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(), middleware.Instrument(nrApp))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"error":   "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	handler := h.NewHandler(db)

	api := r.Group("/api")
	{
		api.GET("/health", handler.Health)
		api.GET("/db-check", handler.DBCheck)

		requests := api.Group("/trip-requests")
		requests.POST("", handler.CreateTripRequest)
		requests.GET("/:id", handler.GetTripRequest)
		requests.GET("/:id/options", handler.ListTripOptions)
		requests.POST("/:id/options", handler.CreateTripOption)

		options := api.Group("/trip-options")
		options.GET("/:id", handler.GetTripOption)
		options.GET("/:id/activities", handler.ListTripOptionActivities)
		options.POST("/:id/checkout", handler.Checkout)
		options.POST("/:id/confirm", handler.ConfirmBookings)

		api.PUT("/activities/:id/lock", handler.SetActivityLock)

		itinerary := api.Group("/itinerary")
		itinerary.GET("/:tripOptionId/preview", handler.PreviewItinerary)
		itinerary.GET("/:tripOptionId/download", handler.DownloadItinerary)
	}

	return r
}
