package handlers

import (
	"net/http"

	"shoba/models"
	"shoba/services/intelligence"
	"shoba/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler exposes the site chat widget over HTTP.
type ChatHandler struct {
	Svc intelligence.ChatService
}

func NewChatHandler(svc intelligence.ChatService) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

// ChatGreetingHandler returns the widget's opening message together with
// a fresh chat id for the conversation.
func (h *ChatHandler) ChatGreetingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"chatId":   uuid.New().String(),
		"response": h.Svc.Greeting(),
	})
}

// ChatMessageHandler processes one user message. A missing chat id gets
// one assigned so context tracking starts on the first message.
func (h *ChatHandler) ChatMessageHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.ChatID == "" {
		req.ChatID = uuid.New().String()
	}

	resp, err := h.Svc.Handle(c.Request.Context(), req)
	if err != nil {
		utils.GetLogger().Error("chat handler failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"chatId":   req.ChatID,
		"response": resp,
	})
}
