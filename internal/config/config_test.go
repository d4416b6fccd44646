package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{
			Token:   "123:abc",
			RunMode: "longpoll",
		},
	}
}

func TestNormalizeRequiresToken(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.Token = ""

	assert.Error(t, Normalize(cfg))
}

func TestNormalizeDefaultsToLongpoll(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = ""

	require.NoError(t, Normalize(cfg))
	assert.Equal(t, RunModeLongpoll, cfg.Telegram.RunMode)
}

func TestNormalizeAcceptsPollingAlias(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "Polling"

	require.NoError(t, Normalize(cfg))
	assert.Equal(t, RunModeLongpoll, cfg.Telegram.RunMode)
}

func TestNormalizeRejectsUnknownRunMode(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "carrier-pigeon"

	assert.Error(t, Normalize(cfg))
}

func TestNormalizeWebhookRequiresListener(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "webhook"

	assert.Error(t, Normalize(cfg))

	cfg.Webhook = WebhookConfig{URL: "https://example.com/hook", Listen: "0.0.0.0", Port: 8443}
	assert.NoError(t, Normalize(cfg))
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
telegram:
  token: "123:abc"
  run_mode: longpoll
  longpoll_timeout_seconds: 15
shop:
  currency: "руб."
rate_limit:
  interval_ms: 300
  exclude_updates: [Callback]
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Telegram.Token)
	assert.Equal(t, 15, cfg.Telegram.LongPollTimeoutSeconds)
	assert.Equal(t, "руб.", cfg.Shop.Currency)
	assert.Equal(t, []string{"callback"}, cfg.RateLimit.ExcludeUpdates)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
