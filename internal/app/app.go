package app

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"taxo/internal/config"
	"taxo/internal/services"
	"taxo/internal/taxonomy"
	"taxo/pkg/suggester"
	"taxo/pkg/validation"
)

type App struct {
	Config *config.Config

	Taxonomy  taxonomy.SnapshotProvider
	Suggester suggester.CategorySuggester // nil when suggestion.provider is "none"

	CategoryService *services.CategoryService
}

func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	app.Taxonomy = taxonomy.NewFileProvider(cfg.Taxonomy.File)

	if err := app.initSuggester(); err != nil {
		return nil, err
	}

	app.CategoryService = services.NewCategoryService(
		app.Taxonomy,
		validation.NewValidator(cfg.Rules()),
		app.Suggester,
		cfg.Matching.Threshold,
	)
	return app, nil
}

func (a *App) initSuggester() error {
	cfg := a.Config.Suggestion

	switch cfg.Provider {
	case "", "none":
		log.Debug("No suggestion provider configured; suggest command is disabled")
		return nil
	case "openai":
		if cfg.OpenaiApiKey == "" {
			return fmt.Errorf("suggestion provider is openai but no API key is set (OPENAI_API_KEY)")
		}
		client := openai.NewClient(cfg.OpenaiApiKey)
		a.Suggester = suggester.NewLLMSuggester(client, cfg.Model, cfg.PromptTemplate)
	case "gemini":
		gem, err := suggester.NewGeminiSuggester(context.Background(), cfg.GoogleApiKey, cfg.Model, cfg.PromptTemplate)
		if err != nil {
			return fmt.Errorf("failed to initialize Gemini suggester: %w", err)
		}
		a.Suggester = gem
	default:
		return fmt.Errorf("unknown suggestion provider: %s", cfg.Provider)
	}

	log.Infof("Suggestion provider initialized: %s (model %s)", cfg.Provider, cfg.Model)
	return nil
}
