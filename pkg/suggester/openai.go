package suggester

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// DefaultPromptTemplate asks for strict JSON so the response can be
// parsed without scraping.
const DefaultPromptTemplate = `You are categorizing a marketplace listing.
Title: {{TITLE}}
Description: {{DESCRIPTION}}
Existing categories: {{EXISTING_CATEGORIES}}

Reply with JSON only: {"category": "<suggested category name>", "confidence": <0..1>}.
Prefer an existing category name when one fits; otherwise propose a short,
brand-agnostic, title-cased name.`

// LLMSuggester implements CategorySuggester on top of an OpenAI-compatible
// chat completion API.
type LLMSuggester struct {
	client interface {
		CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	}
	model          string
	promptTemplate string
}

// NewLLMSuggester creates a suggester using an OpenAI-compatible client.
// An empty prompt falls back to DefaultPromptTemplate.
func NewLLMSuggester(client interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}, model, prompt string) *LLMSuggester {
	if prompt == "" {
		prompt = DefaultPromptTemplate
	}
	return &LLMSuggester{
		client:         client,
		model:          model,
		promptTemplate: prompt,
	}
}

func (s *LLMSuggester) Suggest(ctx context.Context, req SuggestionRequest) (SuggestionResult, error) {
	if s.client == nil {
		return SuggestionResult{}, fmt.Errorf("LLM suggester is not initialized with an OpenAI client")
	}

	prompt := s.promptTemplate
	prompt = strings.ReplaceAll(prompt, "{{TITLE}}", req.Title)
	prompt = strings.ReplaceAll(prompt, "{{DESCRIPTION}}", req.Description)
	prompt = strings.ReplaceAll(prompt, "{{EXISTING_CATEGORIES}}", strings.Join(req.ExistingCategories, ", "))

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		return SuggestionResult{}, fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return SuggestionResult{}, fmt.Errorf("no choices returned from OpenAI")
	}

	return parseSuggestion(resp.Choices[0].Message.Content)
}

// parseSuggestion decodes the model's JSON reply. Shared by both
// backends so they stay behaviorally interchangeable.
func parseSuggestion(content string) (SuggestionResult, error) {
	content = strings.TrimSpace(content)

	var parsed struct {
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return SuggestionResult{}, fmt.Errorf("failed to parse suggestion response as JSON: %w\nResponse content: %s", err, content)
	}
	if parsed.Category == "" {
		return SuggestionResult{}, fmt.Errorf("suggestion response did not include a category")
	}
	if parsed.Confidence == 0 {
		parsed.Confidence = 1.0
	}

	return SuggestionResult{
		Category:   parsed.Category,
		Confidence: parsed.Confidence,
	}, nil
}
