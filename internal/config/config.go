package config

import (
	"fmt"

	"github.com/spf13/viper"

	"taxo/pkg/matching"
	"taxo/pkg/validation"
)

type Config struct {
	Taxonomy struct {
		// File is the JSON snapshot of existing categories.
		File string `mapstructure:"file"`
	} `mapstructure:"taxonomy"`

	Matching struct {
		// Threshold is the minimum similarity score to recommend reuse.
		Threshold float64 `mapstructure:"threshold"`
	} `mapstructure:"matching"`

	Validation struct {
		MinLength     int      `mapstructure:"min_length"`
		MaxLength     int      `mapstructure:"max_length"`
		BrandKeywords []string `mapstructure:"brand_keywords"`
	} `mapstructure:"validation"`

	Suggestion struct {
		Provider       string `mapstructure:"provider"` // "openai", "gemini", or "none"
		Model          string `mapstructure:"model"`
		OpenaiApiKey   string `mapstructure:"openai_api_key"`
		GoogleApiKey   string `mapstructure:"google_api_key"`
		PromptTemplate string `mapstructure:"prompt_template"`
	} `mapstructure:"suggestion"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".") // Look for config.yaml in the current directory

	// Every engine tunable has a default so a bare run works without a
	// config file.
	viper.SetDefault("taxonomy.file", "categories.json")
	viper.SetDefault("matching.threshold", matching.DefaultThreshold)
	defaults := validation.DefaultRules()
	viper.SetDefault("validation.min_length", defaults.MinLength)
	viper.SetDefault("validation.max_length", defaults.MaxLength)
	viper.SetDefault("validation.brand_keywords", defaults.BrandKeywords)
	viper.SetDefault("suggestion.provider", "none")
	viper.SetDefault("suggestion.model", "gpt-4o-mini")

	viper.AutomaticEnv()
	// Bind the conventional env vars so API keys never have to live in
	// the config file.
	viper.BindEnv("suggestion.openai_api_key", "OPENAI_API_KEY")
	viper.BindEnv("suggestion.google_api_key", "GEMINI_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Rules converts the validation section into the engine's rule set.
func (c *Config) Rules() validation.Rules {
	return validation.Rules{
		MinLength:     c.Validation.MinLength,
		MaxLength:     c.Validation.MaxLength,
		BrandKeywords: c.Validation.BrandKeywords,
	}
}
