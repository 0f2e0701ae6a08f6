package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/curricuforge/internal/config"
	"github.com/phrazzld/curricuforge/internal/generation"
	"github.com/phrazzld/curricuforge/internal/mocks"
	"github.com/phrazzld/curricuforge/internal/platform/gemini"
	"github.com/phrazzld/curricuforge/internal/platform/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:                   "127.0.0.1",
			Port:                   8080,
			LogLevel:               "info",
			ShutdownTimeoutSeconds: 2,
		},
		LLM: config.LLMConfig{
			Provider:        config.ProviderGemini,
			APIKey:          "test-key",
			ModelName:       "gemini-2.0-flash",
			Temperature:     0.7,
			MaxOutputTokens: 2000,
			TimeoutSeconds:  1,
		},
	}
}

func newTestApp(t *testing.T, gen generation.Generator) *application {
	t.Helper()
	app, err := newApplicationWithGenerator(testConfig(), testLogger(), gen)
	require.NoError(t, err)
	return app
}

func TestNewGenerator(t *testing.T) {
	ctx := context.Background()

	t.Run("gemini", func(t *testing.T) {
		cfg := testConfig().LLM
		gen, err := newGenerator(ctx, testLogger(), cfg)
		require.NoError(t, err)
		assert.IsType(t, &gemini.Generator{}, gen)
	})

	t.Run("openai", func(t *testing.T) {
		cfg := testConfig().LLM
		cfg.Provider = config.ProviderOpenAI
		cfg.ModelName = "gpt-3.5-turbo"
		gen, err := newGenerator(ctx, testLogger(), cfg)
		require.NoError(t, err)
		assert.IsType(t, &openai.Generator{}, gen)
	})

	t.Run("unsupported provider", func(t *testing.T) {
		cfg := testConfig().LLM
		cfg.Provider = "bard"
		_, err := newGenerator(ctx, testLogger(), cfg)
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})
}

func TestNewApplicationCustomPromptTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("Teach {{.Subject}} over {{.Duration}} at {{.Level}} level."), 0o600))

	cfg := testConfig()
	cfg.LLM.PromptTemplatePath = path
	gen := mocks.NewMockGeneratorWithText("plan")
	app, err := newApplicationWithGenerator(cfg, testLogger(), gen)
	require.NoError(t, err)

	out := app.curricula.Generate(context.Background(), rawForm("Go", "2-week"))
	require.True(t, out.Result.OK())
	assert.Equal(t, []string{"Teach Go over 2-week at Beginner level."}, gen.Prompts())
}

func TestNewApplicationBadPromptTemplate(t *testing.T) {
	cfg := testConfig()
	cfg.LLM.PromptTemplatePath = filepath.Join(t.TempDir(), "missing.tmpl")

	_, err := newApplicationWithGenerator(cfg, testLogger(), mocks.NewMockGeneratorWithText("plan"))
	assert.Error(t, err)
}

func TestRouter(t *testing.T) {
	gen := mocks.NewMockGeneratorWithText("## Course Overview")
	router := newTestApp(t, gen).setupRouter()

	tests := []struct {
		name        string
		method      string
		path        string
		body        string
		contentType string
		wantStatus  int
		wantBody    string
	}{
		{"form page", http.MethodGet, "/", "", "", http.StatusOK, `action="/generate"`},
		{"health", http.MethodGet, "/health", "", "", http.StatusOK, "OK"},
		{"metrics", http.MethodGet, "/metrics", "", "", http.StatusOK, "curricuforge_"},
		{
			"form submit", http.MethodPost, "/generate",
			url.Values{"subject": {"Python"}, "duration": {"4-week"}}.Encode(),
			"application/x-www-form-urlencoded", http.StatusOK, "## Course Overview",
		},
		{
			"alternate form submit", http.MethodPost, "/",
			url.Values{"subject": {"Python"}, "duration": {"4-week"}}.Encode(),
			"application/x-www-form-urlencoded", http.StatusOK, "## Course Overview",
		},
		{
			"validation failure", http.MethodPost, "/generate",
			url.Values{"subject": {""}, "duration": {"4-week"}}.Encode(),
			"application/x-www-form-urlencoded", http.StatusBadRequest, "Please provide both Subject and Duration fields.",
		},
		{
			"json", http.MethodPost, "/api/curricula",
			`{"subject":"Python","duration":"4-week"}`,
			"application/json", http.StatusOK, `"curriculum":"## Course Overview"`,
		},
		{"unknown route", http.MethodGet, "/nope", "", "", http.StatusNotFound, ""},
		{"wrong method", http.MethodDelete, "/generate", "", "", http.StatusMethodNotAllowed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
		})
	}

	// Only the three successful submissions reach the backend.
	assert.Equal(t, 3, gen.CallCount())
}

func TestServeShutsDownOnContextCancel(t *testing.T) {
	gen := mocks.NewMockGeneratorWithText("plan")
	app := newTestApp(t, gen)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, listener, app.setupRouter()) }()

	healthURL := "http://" + listener.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(healthURL)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Equal(t, 1, gen.CloseCount(), "generator is closed on shutdown")
}

func TestCleanupLogsCloseError(t *testing.T) {
	gen := &mocks.MockGenerator{CloseErr: errors.New("already closed")}
	app := newTestApp(t, gen)

	app.cleanup()
	assert.Equal(t, 1, gen.CloseCount())
}
