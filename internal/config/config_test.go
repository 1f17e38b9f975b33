package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"YIJING_DB", "YIJING_LOG_LEVEL", "OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL", "YIJING_CONSULT_DELAY"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"), "")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)
	assert.False(t, cfg.OpenAI.Enabled())
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.toml", `
db = "/tmp/y.db"
log_level = "debug"
consult_delay = "2s"

[openai]
api_key = "sk-file"
model = "gpt-4o"
`)
	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/y.db", cfg.DB)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.ConsultDelay)
	assert.True(t, cfg.OpenAI.Enabled())
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.toml", "db = \"x.db\"\nlog_levle = \"info\"\n")
	_, err := Load(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_levle")
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.toml", "db = \"file.db\"\n[openai]\nmodel = \"file-model\"\n")
	t.Setenv("YIJING_DB", "env.db")
	t.Setenv("OPENAI_MODEL", "env-model")

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "env.db", cfg.DB)
	assert.Equal(t, "env-model", cfg.OpenAI.Model)
}

func TestDotEnv(t *testing.T) {
	clearEnv(t)
	envFile := writeFile(t, ".env", "OPENAI_API_KEY=sk-dotenv\nYIJING_CONSULT_DELAY=1500ms\n")
	t.Cleanup(func() {
		os.Unsetenv("OPENAI_API_KEY")
		os.Unsetenv("YIJING_CONSULT_DELAY")
	})

	cfg, err := Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, "sk-dotenv", cfg.OpenAI.APIKey)
	assert.Equal(t, 1500*time.Millisecond, cfg.ConsultDelay)
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Defaults()
	cfg.DB = " "
	cfg.LogLevel = "loud"
	cfg.ConsultDelay = -time.Second

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"db path", "log_level", "consult_delay"} {
		assert.Contains(t, err.Error(), want)
	}
}
