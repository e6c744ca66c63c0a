package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// GeminiClient は usecase.ChatModel のGemini実装。
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey string, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Generate はsystemプロンプト付きで1往復だけ生成する。
func (g *GeminiClient) Generate(ctx context.Context, system string, message string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(message, genai.RoleUser),
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}

	reply := result.Text()
	if reply == "" {
		return "", errors.New("gemini: empty reply")
	}
	return reply, nil
}
