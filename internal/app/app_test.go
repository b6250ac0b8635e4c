package app

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/portfolio/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T, yaml string) config.Config {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml), config.WithDefaults(configDefaults), config.WithEnv(configEnv))
	require.NoError(t, err)
	return cfg
}

func startTestApp(t *testing.T, cfg config.Config) string {
	t.Helper()

	a := newWithConfig(cfg)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	errCh := a.Serve(l)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		a.Stop(ctx)
		assert.ErrorIs(t, <-errCh, http.ErrServerClosed)
	})

	return "http://" + l.Addr().String()
}

func send(t *testing.T, req *http.Request) (*http.Response, []byte) {
	t.Helper()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestApp_HealthReportsMissingMailSettings(t *testing.T) {
	t.Setenv("EMAIL_SENDER", "")
	t.Setenv("EMAIL_PASSWORD", "")
	t.Setenv("EMAIL_RECEIVER", "")

	base := startTestApp(t, newTestConfig(t, `mail: {receiver: owner@example.com}`))

	req, err := http.NewRequest(http.MethodGet, base+"/healthz", nil)
	require.NoError(t, err)
	resp, body := send(t, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "ok", got["status"])
	assert.Equal(t, "1.0.0", got["app_version"])
	assert.Equal(t, []any{"EMAIL_SENDER", "EMAIL_PASSWORD"}, got["missing_envs"])
}

func TestApp_ContactWithoutSettings(t *testing.T) {
	t.Setenv("EMAIL_SENDER", "")
	t.Setenv("EMAIL_PASSWORD", "")
	t.Setenv("EMAIL_RECEIVER", "")

	base := startTestApp(t, newTestConfig(t, `app: {name: portfolio-test}`))

	post := func(body string) (*http.Response, []byte) {
		req, err := http.NewRequest(http.MethodPost, base+"/contato/", strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		return send(t, req)
	}

	resp, body := post(`{"nome":"Ana","email":"ana@example.com","mensagem":"Olá"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Erro de configuração: faltando EMAIL_SENDER, EMAIL_PASSWORD, EMAIL_RECEIVER"}`, string(body))

	resp, body = post(`{"nome":"Ana","email":"ana@example","mensagem":"Olá"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Por favor, insira um e-mail válido."}`, string(body))

	resp, body = post(`not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"JSON inválido."}`, string(body))
}

func TestApp_HomePage(t *testing.T) {
	base := startTestApp(t, newTestConfig(t, `app: {site_name: "Ana Dev", version: "3.1.0"}`))

	req, err := http.NewRequest(http.MethodGet, base+"/", nil)
	require.NoError(t, err)
	resp, body := send(t, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Content-Security-Policy"))
	assert.Contains(t, string(body), "Ana Dev")
	assert.Contains(t, string(body), "v3.1.0")

	req, err = http.NewRequest(http.MethodHead, base+"/", nil)
	require.NoError(t, err)
	resp, body = send(t, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body)

	req, err = http.NewRequest(http.MethodGet, base+"/static/css/site.css", nil)
	require.NoError(t, err)
	resp, _ = send(t, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func preflight(t *testing.T, base, origin string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodOptions, base+"/contato/", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	resp, _ := send(t, req)
	return resp
}

func TestApp_CORS(t *testing.T) {
	t.Run("configured origins", func(t *testing.T) {
		t.Setenv("ALLOW_ALL_CORS", "false")
		t.Setenv("ALLOWED_ORIGINS", "https://ana.dev, https://www.ana.dev")
		base := startTestApp(t, newTestConfig(t, `{}`))

		resp := preflight(t, base, "https://www.ana.dev")
		assert.Equal(t, "https://www.ana.dev", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))

		resp = preflight(t, base, "https://evil.example")
		assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("allow all", func(t *testing.T) {
		t.Setenv("ALLOW_ALL_CORS", "true")
		base := startTestApp(t, newTestConfig(t, `{}`))

		resp := preflight(t, base, "https://anyone.example")
		assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	})
}

func TestNewCORS_DefaultOrigins(t *testing.T) {
	cfg := newTestConfig(t, `{}`)
	assert.Equal(t, []string{"http://localhost", "http://127.0.0.1"}, cfg.GetArray("app.server.cors.allowed_origins"))
	assert.NotNil(t, newCORS(cfg))
}
