package routes

import (
	"net/http"
	"time"

	"shoba/handlers"
	"shoba/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the read-only site content endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/services/:slug", hb.GetServiceHandler)
		api.GET("/locations", hb.ListLocationsHandler)
		api.GET("/locations/:slug", hb.GetLocationHandler)
		api.GET("/addons", hb.ListAddonsHandler)
		api.GET("/timeslots", hb.ListTimeSlotsHandler)
		api.GET("/testimonials", hb.ListTestimonialsHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.StartSession)
		bookingGroup.GET("/session/:sessionID", hb.GetSession)
		bookingGroup.PATCH("/session/:sessionID", hb.UpdateSession)
		bookingGroup.POST("/session/:sessionID/next", hb.NextStep)
		bookingGroup.POST("/session/:sessionID/back", hb.PreviousStep)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
		bookingGroup.GET("/slots", hb.GetSlots)
		bookingGroup.GET("/dates", hb.GetDates)
	}
}

// RegisterChatRoutes registers the chat widget endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.GET("/greeting", hb.ChatGreetingHandler)
		api.POST("", hb.ChatMessageHandler)
	}
}

// RegisterStatusRoutes registers the order tracker endpoint.
func RegisterStatusRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/status")
	{
		api.POST("/lookup", hb.StatusLookupHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm Shoba",
			"checks":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterStatusRoutes(r, hb)
}
