package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/voquill/voquill/config"
	"github.com/voquill/voquill/pkg/provider"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefaultHasBuiltinProviders(t *testing.T) {
	cfg := config.Default()

	for _, id := range []string{"openai", "mistral", "google"} {
		_, ok := cfg.STT.Get(id)
		require.True(t, ok, id)
	}

	for _, id := range []string{"openai", "google", "elevenlabs", "mistral"} {
		_, ok := cfg.TTS.Get(id)
		require.True(t, ok, id)
	}

	for _, id := range []string{"openai", "anthropic", "google", "mistral"} {
		_, ok := cfg.LLM.Get(id)
		require.True(t, ok, id)
	}

	require.NotNil(t, cfg.Speech)
	require.NotNil(t, cfg.Catalog)
}

func TestBuiltinDescriptorsRequireKey(t *testing.T) {
	cfg := config.Default()

	for _, desc := range cfg.LLM.Descriptors() {
		require.True(t, desc.RequiresAPIKey, desc.ID)
		require.Equal(t, provider.CapabilityLLM, desc.Capability)
	}
}

func TestParseRegistersConfiguredProvider(t *testing.T) {
	t.Setenv("TEST_OPENAI_KEY", "sk-from-env")

	path := writeConfig(t, `
providers:
  - id: team-openai
    type: openai
    name: Team OpenAI
    capabilities: [llm]
    token: ${TEST_OPENAI_KEY}
    model: gpt-4o-mini
`)

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	_, ok := cfg.LLM.Get("team-openai")
	require.True(t, ok)

	desc, ok := cfg.LLM.Descriptor("team-openai")
	require.True(t, ok)
	require.Equal(t, "Team OpenAI", desc.Name)

	// a configured token means callers need no per-call key
	require.False(t, desc.RequiresAPIKey)

	// built-ins stay registered alongside
	_, ok = cfg.LLM.Get("openai")
	require.True(t, ok)
}

func TestParseModelAndVoiceOverrides(t *testing.T) {
	path := writeConfig(t, `
providers:
  - id: team-tts
    type: elevenlabs
    token: el-token
    models: [eleven_turbo_v2_5]
    voices: [rachel, adam]
`)

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	p, ok := cfg.TTS.Get("team-tts")
	require.True(t, ok)

	cat, ok := p.(provider.VoiceCatalog)
	require.True(t, ok)

	voices, err := cat.ListVoices(t.Context(), "")
	require.NoError(t, err)
	require.Len(t, voices, 2)
	require.Equal(t, "rachel", voices[0].ID)

	models, ok := p.(provider.ModelCatalog)
	require.True(t, ok)
	require.Equal(t, "eleven_turbo_v2_5", models.FallbackModels()[0].ID)
}

func TestConfiguredProviderKeepsVendorCatalog(t *testing.T) {
	path := writeConfig(t, `
providers:
  - id: slow-openai
    type: openai
    token: sk-test
    capabilities: [llm]
    limit: 1
`)

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	p, ok := cfg.LLM.Get("slow-openai")
	require.True(t, ok)

	// the rate limit decorator must not hide model discovery
	cat, ok := p.(provider.ModelCatalog)
	require.True(t, ok)
	require.NotEmpty(t, cat.FallbackModels())
}

func TestParseRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, `
providers: []
surprise: true
`)

	_, err := config.Parse(path)
	require.Error(t, err)
}

func TestParseRejectsInvalidCapability(t *testing.T) {
	path := writeConfig(t, `
providers:
  - type: openai
    capabilities: [video]
`)

	_, err := config.Parse(path)
	require.Error(t, err)
}

func TestParseRejectsInvalidProviderType(t *testing.T) {
	path := writeConfig(t, `
providers:
  - type: acme
    capabilities: [llm]
`)

	_, err := config.Parse(path)
	require.Error(t, err)
}

func TestParseRejectsInvalidCacheBackend(t *testing.T) {
	path := writeConfig(t, `
cache:
  backend: etcd
`)

	_, err := config.Parse(path)
	require.Error(t, err)
}

func TestParseFileCache(t *testing.T) {
	dir := t.TempDir()

	path := writeConfig(t, `
cache:
  backend: file
  path: `+filepath.Join(dir, "cache.json")+`
  ttl: 1h
output:
  dir: `+dir+`
`)

	cfg, err := config.Parse(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Store)
}

func TestParseRejectsBadTTL(t *testing.T) {
	path := writeConfig(t, `
cache:
  ttl: soon
`)

	_, err := config.Parse(path)
	require.Error(t, err)
}
