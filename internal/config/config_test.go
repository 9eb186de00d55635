package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	mainYAML := `Name: frank-api
Host: 127.0.0.1
Port: 8888
Env: test
LLM:
  File: llm.yaml
Exchange:
  File: exchange.yaml
Assistant:
  File: assistant.yaml
`
	llmYAML := `base_url: "https://api.example.com"
api_key: "test-key"
default_model: "llama-3.3-70b"
timeout: "30s"
`
	exchangeYAML := `base_url: "https://api.coinbase.com"
timeout: "10s"
`
	assistantYAML := `watchlist:
  - BTC
  - ETH
  - SOL
`
	files := map[string]string{
		"frank.yaml":     mainYAML,
		"llm.yaml":       llmYAML,
		"exchange.yaml":  exchangeYAML,
		"assistant.yaml": assistantYAML,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestLoadHydratesSections(t *testing.T) {
	t.Setenv("NO_DOTENV", "1")
	t.Setenv("TOGETHER_API_KEY", "")
	t.Setenv("TOGETHER_DEFAULT_MODEL", "")
	t.Setenv("COINBASE_API_KEY", "")
	t.Setenv("COINBASE_API_SECRET", "")

	dir := writeConfigTree(t)
	cfg, err := Load(filepath.Join(dir, "frank.yaml"))
	require.NoError(t, err)

	require.Equal(t, "frank-api", cfg.Name)
	require.Equal(t, 8888, cfg.Port)
	require.True(t, cfg.IsTestEnv())
	require.Equal(t, filepath.Join(dir, "frank.yaml"), cfg.MainPath())

	require.NotNil(t, cfg.LLM.Value)
	require.Equal(t, "test-key", cfg.LLM.Value.APIKey)
	require.Equal(t, 30*time.Second, cfg.LLM.Value.Timeout)

	require.NotNil(t, cfg.Exchange.Value)
	require.Equal(t, "https://api.coinbase.com", cfg.Exchange.Value.BaseURL)
	require.False(t, cfg.Exchange.Value.HasCredentials())

	require.NotNil(t, cfg.Assistant.Value)
	require.Equal(t, []string{"BTC", "ETH", "SOL"}, cfg.Assistant.Value.Watchlist)
}

func TestLoadWithoutSections(t *testing.T) {
	t.Setenv("NO_DOTENV", "1")

	dir := t.TempDir()
	path := filepath.Join(dir, "frank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Name: frank-api\nHost: 127.0.0.1\nPort: 8888\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "test", cfg.Env)
	require.Nil(t, cfg.LLM.Value)
	require.Nil(t, cfg.Exchange.Value)
	require.Nil(t, cfg.Assistant.Value)
}

func TestLoadRejectsBadEnv(t *testing.T) {
	t.Setenv("NO_DOTENV", "1")

	dir := t.TempDir()
	path := filepath.Join(dir, "frank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Name: frank-api\nHost: 127.0.0.1\nPort: 8888\nEnv: staging\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "env must be one of")
}

func TestLoadMissingSectionFile(t *testing.T) {
	t.Setenv("NO_DOTENV", "1")

	dir := t.TempDir()
	path := filepath.Join(dir, "frank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Name: frank-api\nHost: 127.0.0.1\nPort: 8888\nLLM:\n  File: nope.yaml\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
