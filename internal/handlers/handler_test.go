package handlers_test

import (
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

	"github.com/csg33k/palmwatch/internal/controller"
	"github.com/csg33k/palmwatch/internal/handlers"
	"github.com/csg33k/palmwatch/internal/observability"
	"github.com/csg33k/palmwatch/internal/templates"
)

func newServer(t *testing.T, profile controller.Profile, upstream string) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "palmwatch.wasm"), []byte("\x00asm"), 0o644))

	opts := map[string][]templates.Option{"city": {{Value: "al_hassa", Label: "Al Hassa"}}}
	h, err := handlers.New(profile, opts, dir, upstream, observability.DiscardLogger())
	require.NoError(t, err)
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func TestIndex_ServesPage(t *testing.T) {
	srv := newServer(t, controller.Dashboard(), "http://127.0.0.1:1")

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, string(body), `id="calc-btn"`)
	assert.Contains(t, string(body), `<option value="al_hassa">Al Hassa</option>`)
	assert.Contains(t, string(body), "/static/palmwatch.wasm")
}

func TestIndex_UnknownPathIs404(t *testing.T) {
	srv := newServer(t, controller.Risk(), "http://127.0.0.1:1")

	resp, err := http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStatic_ServesWasm(t *testing.T) {
	srv := newServer(t, controller.Risk(), "http://127.0.0.1:1")

	resp, err := http.Get(srv.URL + "/static/palmwatch.wasm")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "\x00asm", string(body))
}

func TestAssess_ForwardsToUpstream(t *testing.T) {
	var gotBody, gotID string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/assess", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"result":"<p>Low</p>"}`)
	}))
	defer upstream.Close()
	srv := newServer(t, controller.Risk(), upstream.URL)

	resp, err := http.Post(srv.URL+"/assess", "application/json", strings.NewReader(`{"temp":"30"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"result":"<p>Low</p>"}`, string(body))
	assert.Equal(t, `{"temp":"30"}`, gotBody)
	assert.NotEmpty(t, gotID)
}

func TestAssess_UpstreamDownIsBadGateway(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	addr := upstream.URL
	upstream.Close()
	srv := newServer(t, controller.Risk(), addr)

	resp, err := http.Post(srv.URL+"/assess", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestSchema_PayloadMatchesProfile(t *testing.T) {
	srv := newServer(t, controller.Risk(), "http://127.0.0.1:1")

	resp, err := http.Get(srv.URL + "/schema/payload.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, k := range []string{"location", "temp", "humidity", "age", "rain", "soil"} {
		assert.Contains(t, props, k)
	}
}

func TestMetrics_Exposed(t *testing.T) {
	srv := newServer(t, controller.Risk(), "http://127.0.0.1:1")

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
