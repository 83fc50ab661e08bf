package suggester

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// GeminiSuggester implements CategorySuggester using the Google Gemini
// API. It answers the same JSON contract as LLMSuggester.
type GeminiSuggester struct {
	client         *genai.Client
	model          string
	promptTemplate string
}

// NewGeminiSuggester creates a Gemini-backed suggester. An empty apiKey
// falls back to the GEMINI_API_KEY environment variable; if neither is
// set the suggester is created disabled and Suggest returns an error.
func NewGeminiSuggester(ctx context.Context, apiKey, model, prompt string) (*GeminiSuggester, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		log.Warn("Gemini API key not provided. Gemini suggester will be disabled.")
		return &GeminiSuggester{model: model}, nil
	}
	if prompt == "" {
		prompt = DefaultPromptTemplate
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	log.Infof("Gemini suggester initialized with model %s", model)
	return &GeminiSuggester{
		client:         client,
		model:          model,
		promptTemplate: prompt,
	}, nil
}

func (s *GeminiSuggester) Suggest(ctx context.Context, req SuggestionRequest) (SuggestionResult, error) {
	if s.client == nil {
		return SuggestionResult{}, fmt.Errorf("Gemini suggester is not initialized (missing API key)")
	}

	prompt := s.promptTemplate
	prompt = strings.ReplaceAll(prompt, "{{TITLE}}", req.Title)
	prompt = strings.ReplaceAll(prompt, "{{DESCRIPTION}}", req.Description)
	prompt = strings.ReplaceAll(prompt, "{{EXISTING_CATEGORIES}}", strings.Join(req.ExistingCategories, ", "))

	model := s.client.GenerativeModel(s.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return SuggestionResult{}, fmt.Errorf("gemini content generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return SuggestionResult{}, fmt.Errorf("no candidates returned from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return parseSuggestion(sb.String())
}

// Close releases the underlying API client.
func (s *GeminiSuggester) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
