package handlers

import (
	"errors"
	"io"
	"net/http"

	"shoba/services/wizard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard over HTTP.
type BookingHandler struct {
	Svc    wizard.WizardService
	Logger *zap.Logger
}

func NewBookingHandler(svc wizard.WizardService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// writeWizardError maps service errors to HTTP responses. Typed wizard
// errors carry a stable code the frontend can switch on.
func writeWizardError(c *gin.Context, err error) {
	var we *wizard.WizardError
	if errors.As(err, &we) {
		status := http.StatusBadRequest
		if we.Code == "sessionNotFound" {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": we.Message, "code": we.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// StartSession creates a new wizard session, optionally seeded with a
// service and location from the landing page deep link. An empty body is
// valid: the wizard starts with its defaults.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		ServiceID  string `json:"serviceId"`
		LocationID string `json:"locationId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil && err != io.EOF {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Svc.StartSession(c.Request.Context(), input.ServiceID, input.LocationID)
	if err != nil {
		h.Logger.Error("StartSession failed", zap.Error(err))
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSession returns the session with its derived slots and price.
func (h *BookingHandler) GetSession(c *gin.Context) {
	resp, err := h.Svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateSession applies a partial draft patch to the session.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var patch wizard.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Svc.UpdateDraft(c.Request.Context(), c.Param("sessionID"), patch)
	if err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// NextStep advances the wizard after validating the current step.
func (h *BookingHandler) NextStep(c *gin.Context) {
	resp, err := h.Svc.Next(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PreviousStep moves the wizard backwards without clearing any data.
func (h *BookingHandler) PreviousStep(c *gin.Context) {
	resp, err := h.Svc.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmBooking finalizes the booking and returns the confirmation.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	booking, err := h.Svc.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeWizardError(c, err)
		return
	}
	h.Logger.Info("booking confirmed",
		zap.String("bookingID", booking.ID),
		zap.String("service", booking.ServiceTitle))
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// CancelSession discards the session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Svc.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// GetSlots returns the derived slot grid for one date.
func (h *BookingHandler) GetSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	slots, err := h.Svc.SlotStatuses(date)
	if err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// GetDates returns the selectable booking dates, today first.
func (h *BookingHandler) GetDates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dates": h.Svc.DateWindow()})
}
