package llm

import (
	"context"
	"fmt"

	"github.com/adwitiya/lexio/internal/store"
)

// NewProvider creates a text Provider from configuration, wrapped with the
// logging and retry middleware: caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	logged, err := NewLoggedProvider(ctx, cfg, eventRepo)
	if err != nil {
		return nil, err
	}
	return WithRetry(logged, cfg.Retry), nil
}

// NewLoggedProvider creates a Provider with logging but without the retry
// wrapper, for callers that enforce their own attempt budget.
func NewLoggedProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown model provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(base, cfg.Provider, eventRepo), nil
}

// NewImageProvider creates an ImageProvider from configuration. Only the
// Gemini backend generates images; the Gemini key is used even when another
// provider serves text, and its absence is reported so callers can disable
// image-dependent game types.
func NewImageProvider(ctx context.Context, cfg Config) (ImageProvider, error) {
	if cfg.Provider == "mock" {
		return &MockImageProvider{}, nil
	}
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("image generation requires LEXIO_GEMINI_API_KEY")
	}
	return NewGeminiImageProvider(ctx, cfg.Gemini)
}

// ResolveConfig reads configuration from LEXIO_* environment variables,
// falling back to probing the standard provider key variables.
func ResolveConfig() (Config, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return Config{}, err
		}
		cfg = discovered
	}
	return cfg, nil
}

// NewProviderFromEnv builds a fully wrapped Provider from the environment.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, Config, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return nil, Config{}, err
	}
	p, err := NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		return nil, Config{}, err
	}
	return p, cfg, nil
}
