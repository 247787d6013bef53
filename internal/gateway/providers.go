package gateway

import (
	"fmt"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ProviderConfig selects and configures the hosted model behind the gateway.
// Every provider speaks the OpenAI wire protocol; they differ in endpoint,
// credentials and model naming.
type ProviderConfig struct {
	Provider string // "openai", "azure" or "github"
	APIKey   string
	Model    string
	BaseURL  string
}

// BuildModel constructs the chat model for the configured provider. Missing
// credentials fall back to the provider's conventional environment variable.
func BuildModel(cfg ProviderConfig) (llms.Model, error) {
	switch cfg.Provider {
	case "", "openai":
		return buildOpenAI(cfg)
	case "azure":
		return buildAzureOpenAI(cfg)
	case "github":
		return buildGitHubModels(cfg)
	}
	return nil, fmt.Errorf("unknown model provider: %s", cfg.Provider)
}

func buildOpenAI(cfg ProviderConfig) (llms.Model, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	return openai.New(opts...)
}

func buildAzureOpenAI(cfg ProviderConfig) (llms.Model, error) {
	endpoint := cfg.BaseURL
	if endpoint == "" {
		endpoint = os.Getenv("AZURE_OPENAI_ENDPOINT")
	}
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("AZURE_OPENAI_API_KEY")
	}
	deployment := cfg.Model
	if deployment == "" {
		deployment = os.Getenv("AZURE_OPENAI_DEPLOYMENT_NAME")
	}
	if endpoint == "" || apiKey == "" || deployment == "" {
		return nil, fmt.Errorf("azure provider requires an endpoint, API key and deployment name")
	}

	return openai.New(
		openai.WithAPIType(openai.APITypeAzure),
		openai.WithBaseURL(endpoint),
		openai.WithToken(apiKey),
		openai.WithModel(deployment),
		openai.WithAPIVersion("2024-02-15-preview"),
	)
}

func buildGitHubModels(cfg ProviderConfig) (llms.Model, error) {
	token := cfg.APIKey
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN environment variable not set")
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o"
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://models.inference.ai.azure.com"
	}

	return openai.New(
		openai.WithToken(token),
		openai.WithModel(model),
		openai.WithBaseURL(baseURL),
	)
}
