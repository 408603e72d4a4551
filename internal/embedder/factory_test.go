package embedder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearProviderEnv(t *testing.T) {
	t.Setenv(EnvProvider, "")
	t.Setenv(EnvOpenAIAPIKey, "")
	t.Setenv(EnvJinaAPIKey, "")
}

func TestNewFromEnvNothingConfigured(t *testing.T) {
	clearProviderEnv(t)
	_, err := NewFromEnv()
	assert.ErrorIs(t, err, ErrNoProviderEnabled)
}

func TestNewFromEnvAutoDetectOpenAI(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv(EnvOpenAIAPIKey, "sk-test")

	emb, err := NewFromEnv()
	require.NoError(t, err)
	defer func() { _ = emb.Close() }()

	assert.Equal(t, ProviderOpenAI, emb.Provider())
	assert.Equal(t, DefaultOpenAIModel, emb.Model())
	assert.Equal(t, OpenAIDimension, emb.Dimension())
}

func TestNewFromEnvAutoDetectJina(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv(EnvJinaAPIKey, "jina-test")

	emb, err := NewFromEnv()
	require.NoError(t, err)
	defer func() { _ = emb.Close() }()

	assert.Equal(t, ProviderJina, emb.Provider())
	assert.Equal(t, JinaDimension, emb.Dimension())
}

func TestNewFromEnvOpenAIWinsOverJina(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv(EnvOpenAIAPIKey, "sk-test")
	t.Setenv(EnvJinaAPIKey, "jina-test")

	emb, err := NewFromEnv()
	require.NoError(t, err)
	defer func() { _ = emb.Close() }()

	assert.Equal(t, ProviderOpenAI, emb.Provider())
}

func TestNewFromEnvExplicitProvider(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv(EnvProvider, "jina")
	t.Setenv(EnvOpenAIAPIKey, "sk-test")
	t.Setenv(EnvJinaAPIKey, "jina-test")

	emb, err := NewFromEnv()
	require.NoError(t, err)
	defer func() { _ = emb.Close() }()

	assert.Equal(t, ProviderJina, emb.Provider())
}

func TestNewFromEnvExplicitProviderMissingKey(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv(EnvProvider, "openai")

	_, err := NewFromEnv()
	assert.ErrorIs(t, err, ErrNoProviderEnabled)
}

func TestNewFromEnvUnknownProvider(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv(EnvProvider, "cohere")

	_, err := NewFromEnv()
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}

func TestDetectProvider(t *testing.T) {
	clearProviderEnv(t)
	assert.Equal(t, "", DetectProvider())

	t.Setenv(EnvJinaAPIKey, "jina-test")
	assert.Equal(t, ProviderJina, DetectProvider())

	t.Setenv(EnvProvider, "OPENAI")
	assert.Equal(t, ProviderOpenAI, DetectProvider())
}

func TestNewExplicitConfig(t *testing.T) {
	emb, err := New(Config{Provider: "openai", APIKey: "sk-test", CacheSize: 16})
	require.NoError(t, err)
	defer func() { _ = emb.Close() }()
	assert.Equal(t, ProviderOpenAI, emb.Provider())

	_, err = New(Config{Provider: "local"})
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}
