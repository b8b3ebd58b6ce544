// File: intelligence/service.go
package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shoba/catalog"
	"shoba/models"
	"shoba/utils"

	"go.uber.org/zap"
)

const (
	offlineReply = "I'm offline for a moment, but you can book a service directly!"
	greeting     = "Hello! I'm Shoba, your AI cleaning assistant. How can I help you revive your home today?"
)

var followupActions = []string{"Book Now", "Check Other Prices"}

// ChatService answers free-text questions from the site's chat widget.
type ChatService interface {
	Handle(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
	Greeting() *models.ChatResponse
}

// DefaultChatService implements ChatService on top of a generative
// backend with a Redis conversation context. Model failures never reach
// the user: the widget degrades to a static offline reply.
type DefaultChatService struct {
	Generator ContentGenerator
	CtxStore  *RedisContextStore
	Timeout   time.Duration
}

func NewDefaultChatService(gen ContentGenerator, store *RedisContextStore, timeout time.Duration) *DefaultChatService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &DefaultChatService{Generator: gen, CtxStore: store, Timeout: timeout}
}

// Greeting returns the widget's opening message.
func (s *DefaultChatService) Greeting() *models.ChatResponse {
	return &models.ChatResponse{
		Reply:   greeting,
		Actions: []string{"Check Prices", "Book Service", "Pest Control Info"},
	}
}

// Handle processes one user message. Booking quick-actions short-circuit
// to a navigation hint without touching the model.
func (s *DefaultChatService) Handle(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("empty chat message")
	}

	if text == "Book Service" || text == "Book Now" {
		return &models.ChatResponse{
			Reply:    "Taking you to the booking page.",
			Navigate: "/booking",
		}, nil
	}

	logger := utils.GetLogger()

	history, err := s.CtxStore.Get(ctx, req.ChatID)
	if err != nil {
		// History is a nicety; answer without it.
		logger.Warn("chat: failed to load context", zap.String("chatId", req.ChatID), zap.Error(err))
		history = nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	reply, err := s.Generator.GenerateContent(callCtx, systemPrompt(), buildPrompt(history, text))
	if err != nil {
		logger.Error("chat: generation failed, serving offline fallback", zap.Error(err))
		return &models.ChatResponse{
			Reply:   offlineReply,
			Actions: followupActions,
			Offline: true,
		}, nil
	}
	if strings.TrimSpace(reply) == "" {
		reply = "I'm sorry, I'm having a little trouble connecting. How else can I help?"
	}

	if err := s.CtxStore.Append(ctx, req.ChatID,
		models.ChatTurn{Role: "user", Text: text},
		models.ChatTurn{Role: "bot", Text: reply},
	); err != nil {
		logger.Warn("chat: failed to store context", zap.String("chatId", req.ChatID), zap.Error(err))
	}

	return &models.ChatResponse{
		Reply:   reply,
		Actions: followupActions,
	}, nil
}

// systemPrompt describes the business to the model, built from the live
// catalog so prices and locations never drift from the site content.
func systemPrompt() string {
	var sb strings.Builder
	sb.WriteString(`You are the friendly AI assistant for "Shoba Clean Services" based in Bangalore.
We offer:
`)
	for i, svc := range catalog.Services {
		fmt.Fprintf(&sb, "%d. %s (Starts ₹%d)\n", i+1, svc.Title, svc.BasePrice)
	}
	sb.WriteString(`
Keep answers concise and helpful. If the user wants to book, encourage them to click "Book Now" or use our booking page.
Locations we serve: `)
	names := make([]string, 0, len(catalog.Locations))
	for _, loc := range catalog.Locations {
		names = append(names, loc.Name)
	}
	sb.WriteString(strings.Join(names, ", "))
	sb.WriteString(".\nAlways maintain a professional and clean tone.")
	return sb.String()
}

func buildPrompt(history []models.ChatTurn, text string) string {
	if len(history) == 0 {
		return text
	}
	var sb strings.Builder
	sb.WriteString("Conversation so far:\n")
	for _, turn := range history {
		fmt.Fprintf(&sb, "%s: %s\n", turn.Role, turn.Text)
	}
	sb.WriteString("user: ")
	sb.WriteString(text)
	return sb.String()
}
