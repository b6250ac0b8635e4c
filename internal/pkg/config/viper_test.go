package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
app:
  version: "2.0.0"
  server:
    cors:
      allowed_origins: " https://a.dev, ,https://b.dev "
    http:
      read_timeout_seconds: 7
mail:
  workers: 5
`

func TestNewViperFromBytes(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.GetString("app.version"))
	assert.Equal(t, 5, cfg.GetInt("mail.workers"))
	assert.Equal(t, 7*time.Second, cfg.GetSecond("app.server.http.read_timeout_seconds"))
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, cfg.GetArray("app.server.cors.allowed_origins"))
	assert.Empty(t, cfg.GetArray("missing.key"))
	assert.NoError(t, cfg.Close())
}

func TestNewViperFromBytes_EmptyType(t *testing.T) {
	_, err := NewViperFromBytes(" ", []byte(sampleYAML))
	assert.Error(t, err)
}

func TestEnvOverridesFileAndDefaults(t *testing.T) {
	t.Setenv("SMTP_WORKERS", "9")
	t.Setenv("ALLOW_ALL_CORS", "true")

	cfg, err := NewViperFromBytes("yaml", []byte(sampleYAML),
		WithDefaults(map[string]any{
			"mail.workers":              3,
			"mail.host":                 "smtp.gmail.com",
			"app.server.cors.allow_all": false,
		}),
		WithEnv(map[string]string{
			"mail.workers":              "SMTP_WORKERS",
			"mail.host":                 "SMTP_HOST",
			"app.server.cors.allow_all": "ALLOW_ALL_CORS",
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.GetInt("mail.workers"))
	assert.True(t, cfg.GetBool("app.server.cors.allow_all"))
	assert.Equal(t, "smtp.gmail.com", cfg.GetString("mail.host"))
}

func TestNewViper_MissingFileFallsBack(t *testing.T) {
	t.Setenv("EMAIL_SENDER", "  me@example.com ")

	cfg, err := NewViper(filepath.Join(t.TempDir(), "config.yaml"),
		WithDefaults(map[string]any{"app.version": "1.0.0"}),
		WithEnv(map[string]string{"mail.sender": "EMAIL_SENDER"}),
	)
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", cfg.GetString("app.version"))
	assert.Equal(t, "me@example.com", cfg.GetString("mail.sender"))
}
