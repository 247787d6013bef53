package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildModel_UnknownProvider(t *testing.T) {
	_, err := BuildModel(ProviderConfig{Provider: "gemini"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown model provider")
}

func TestBuildModel_OpenAIRequiresKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	_, err := BuildModel(ProviderConfig{Provider: "openai"})
	assert.Error(t, err)
}

func TestBuildModel_AzureRequiresEndpoint(t *testing.T) {
	t.Setenv("AZURE_OPENAI_ENDPOINT", "")
	t.Setenv("AZURE_OPENAI_API_KEY", "")
	t.Setenv("AZURE_OPENAI_DEPLOYMENT_NAME", "")
	_, err := BuildModel(ProviderConfig{Provider: "azure", APIKey: "key"})
	assert.Error(t, err)
}

func TestBuildModel_GitHubModels(t *testing.T) {
	model, err := BuildModel(ProviderConfig{Provider: "github", APIKey: "token"})
	assert.NoError(t, err)
	assert.NotNil(t, model)
}

func TestBuildModel_OpenAIWithExplicitKey(t *testing.T) {
	model, err := BuildModel(ProviderConfig{Provider: "openai", APIKey: "key", Model: "gpt-4o"})
	assert.NoError(t, err)
	assert.NotNil(t, model)
}
