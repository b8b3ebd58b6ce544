// File: shoba/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Catalog endpoints
	ListServicesHandler     gin.HandlerFunc
	GetServiceHandler       gin.HandlerFunc
	ListLocationsHandler    gin.HandlerFunc
	GetLocationHandler      gin.HandlerFunc
	ListAddonsHandler       gin.HandlerFunc
	ListTimeSlotsHandler    gin.HandlerFunc
	ListTestimonialsHandler gin.HandlerFunc

	// Booking wizard endpoints
	StartSession   gin.HandlerFunc
	GetSession     gin.HandlerFunc
	UpdateSession  gin.HandlerFunc
	NextStep       gin.HandlerFunc
	PreviousStep   gin.HandlerFunc
	ConfirmBooking gin.HandlerFunc
	CancelSession  gin.HandlerFunc
	GetSlots       gin.HandlerFunc
	GetDates       gin.HandlerFunc

	// Chat endpoints
	ChatGreetingHandler gin.HandlerFunc
	ChatMessageHandler  gin.HandlerFunc

	// Status endpoint
	StatusLookupHandler gin.HandlerFunc
}
