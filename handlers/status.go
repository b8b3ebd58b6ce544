package handlers

import (
	"errors"
	"net/http"

	"shoba/services/status"

	"github.com/gin-gonic/gin"
)

// StatusHandler exposes the order tracker lookup.
type StatusHandler struct {
	Svc status.StatusService
}

func NewStatusHandler(svc status.StatusService) *StatusHandler {
	return &StatusHandler{Svc: svc}
}

// StatusLookupHandler resolves the booking recorded for a phone number.
func (h *StatusHandler) StatusLookupHandler(c *gin.Context) {
	var input struct {
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	record, err := h.Svc.Lookup(c.Request.Context(), input.Phone)
	if err != nil {
		switch {
		case errors.Is(err, status.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, status.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": record})
}
