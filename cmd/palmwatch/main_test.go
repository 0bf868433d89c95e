package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/palmwatch/internal/config"
	"github.com/csg33k/palmwatch/internal/observability"
	"github.com/csg33k/palmwatch/internal/templates"
)

func TestCityOptions(t *testing.T) {
	got := cityOptions([]string{"al_hassa", "qatif", "hofuf"})
	assert.Equal(t, []templates.Option{
		{Value: "al_hassa", Label: "Al Hassa"},
		{Value: "qatif", Label: "Qatif"},
		{Value: "hofuf", Label: "Hofuf"},
	}, got)
}

func TestCityOptions_NonASCII(t *testing.T) {
	got := cityOptions([]string{"écija", "ōita_ken"})
	assert.Equal(t, []templates.Option{
		{Value: "écija", Label: "Écija"},
		{Value: "ōita_ken", Label: "Ōita Ken"},
	}, got)
}

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	return &config.Config{
		BaseURL:   baseURL,
		Profile:   "risk",
		Cities:    "al_hassa",
		DBPath:    filepath.Join(t.TempDir(), "forms.db"),
		LogLevel:  "info",
		LogFormat: "text",
	}
}

func TestRun_SetRejectsUnknownField(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1")
	err := run(context.Background(), cfg, observability.DiscardLogger(), "set", []string{"city=qatif"})

	var uerr usageError
	require.ErrorAs(t, err, &uerr)
}

func TestRun_UnknownCommand(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1")
	err := run(context.Background(), cfg, observability.DiscardLogger(), "launch", nil)

	var uerr usageError
	require.ErrorAs(t, err, &uerr)
}

func TestRun_SetThenSubmit(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{"result":"<ul class='risk-list'><li>Red Palm Weevil</li></ul>"}`)
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)
	ctx := context.Background()
	logger := observability.DiscardLogger()
	require.NoError(t, run(ctx, cfg, logger, "set", []string{"temp=30", "humidity=40", "age=12"}))

	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "out.html")
	pdfPath := filepath.Join(dir, "out.pdf")
	require.NoError(t, run(ctx, cfg, logger, "submit", []string{"-html", htmlPath, "-pdf", pdfPath}))

	assert.Equal(t, map[string]string{
		"location": "", "temp": "30", "humidity": "40", "age": "12", "rain": "", "soil": "",
	}, got)

	page, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(page), "<ul class='risk-list'><li>Red Palm Weevil</li></ul>")

	report, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(report), "%PDF-"))

	require.NoError(t, run(ctx, cfg, logger, "clear", nil))
}
