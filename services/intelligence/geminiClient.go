// File: intelligence/gemini_client.go
package intelligence

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ContentGenerator abstracts the generative backend so the chat service
// can be exercised without network access.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
}

// OfflineGenerator always fails, which keeps the chat widget running in
// its offline fallback mode when no API key is configured.
type OfflineGenerator struct{}

func (OfflineGenerator) GenerateContent(ctx context.Context, system, prompt string) (string, error) {
	return "", fmt.Errorf("no generative backend configured")
}

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: "models/gemini-1.5-flash"}, nil
}

func (g *GeminiClient) GenerateContent(ctx context.Context, system, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
