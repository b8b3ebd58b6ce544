package handlers

import (
	"net/http"
	"time"

	"shoba/catalog"
	"shoba/config"

	"github.com/gin-gonic/gin"
)

const maxCatalogDelay = 2000 * time.Millisecond

// catalogDelay applies the configured simulated latency so the frontend
// skeleton states stay exercisable in demos. Capped to keep a bad config
// value from hanging the catalog.
func catalogDelay() {
	ms := config.AppConfig.CatalogDelayMs
	if ms <= 0 {
		return
	}
	d := time.Duration(ms) * time.Millisecond
	if d > maxCatalogDelay {
		d = maxCatalogDelay
	}
	time.Sleep(d)
}

// ListServicesHandler returns the full service catalog.
func ListServicesHandler(c *gin.Context) {
	catalogDelay()
	c.JSON(http.StatusOK, gin.H{"services": catalog.Services})
}

// GetServiceHandler returns one service by id or slug.
func GetServiceHandler(c *gin.Context) {
	catalogDelay()
	slug := c.Param("slug")
	svc := catalog.ServiceByID(slug)
	if svc == nil {
		svc = catalog.ServiceBySlug(slug)
	}
	if svc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListLocationsHandler returns the serviceable areas.
func ListLocationsHandler(c *gin.Context) {
	catalogDelay()
	c.JSON(http.StatusOK, gin.H{"locations": catalog.Locations})
}

// GetLocationHandler returns one location by id or slug.
func GetLocationHandler(c *gin.Context) {
	catalogDelay()
	slug := c.Param("slug")
	loc := catalog.LocationByID(slug)
	if loc == nil {
		loc = catalog.LocationBySlug(slug)
	}
	if loc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return
	}
	c.JSON(http.StatusOK, loc)
}

// ListAddonsHandler returns the optional add-ons.
func ListAddonsHandler(c *gin.Context) {
	catalogDelay()
	c.JSON(http.StatusOK, gin.H{"addons": catalog.Addons})
}

// ListTimeSlotsHandler returns the raw slot definitions without any
// date-derived availability.
func ListTimeSlotsHandler(c *gin.Context) {
	catalogDelay()
	c.JSON(http.StatusOK, gin.H{"timeSlots": catalog.TimeSlots})
}

// ListTestimonialsHandler returns customer reviews for the landing page.
func ListTestimonialsHandler(c *gin.Context) {
	catalogDelay()
	c.JSON(http.StatusOK, gin.H{"testimonials": catalog.Testimonials})
}
