package templates_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/palmwatch/internal/controller"
	"github.com/csg33k/palmwatch/internal/domain"
	"github.com/csg33k/palmwatch/internal/templates"
)

func renderIndex(t *testing.T, cfg templates.PageConfig) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, templates.Index(cfg).Render(context.Background(), &buf))
	return buf.String()
}

func TestIndex_DashboardCarriesDOMContract(t *testing.T) {
	html := renderIndex(t, templates.PageConfig{
		Profile: controller.Dashboard(),
		Options: map[string][]templates.Option{
			"city": {{Value: "al_hassa", Label: "Al Hassa"}, {Value: "qatif", Label: "Qatif"}},
		},
		WasmURL:   "/static/palmwatch.wasm",
		LoaderURL: "/static/wasm_exec.js",
	})

	for _, id := range []string{"calc-btn", "result-area", "result-display", "city",
		"w-temp", "w-hum", "w-dew", "w-wind", "w-vis", "w-pres"} {
		assert.Contains(t, html, `id="`+id+`"`)
	}
	assert.Contains(t, html, `<option value="al_hassa">Al Hassa</option>`)
	assert.Contains(t, html, `class="card hidden"`)
	assert.Contains(t, html, ">Analyze Satellite Data</button>")
	assert.Contains(t, html, `<script src="/static/wasm_exec.js"></script>`)
	assert.Contains(t, html, `<script data-wasm="/static/palmwatch.wasm">`)
}

func TestIndex_RiskFormInputs(t *testing.T) {
	html := renderIndex(t, templates.PageConfig{Profile: controller.Risk()})

	for _, id := range []string{"location", "temp", "humidity", "age", "rain", "soil"} {
		assert.Contains(t, html, `<input type="text" id="`+id+`"`)
	}
	assert.Contains(t, html, `id="temp" name="temp" required`)
	assert.NotContains(t, html, "w-temp")
	assert.Contains(t, html, "Tree Age *")
}

func TestSnapshot_InjectsResultVerbatim(t *testing.T) {
	fragment := "<ul class='risk-list'><li class='risk-high'><strong>White Scale</strong></li></ul>"
	c, err := templates.Snapshot(domain.Dashboard{
		Profile:       "dashboard",
		Readouts:      []domain.Readout{{ID: "w-temp", Label: "Temperature", Text: "31°C"}, {ID: "w-pres", Label: "Pressure", Text: "1006 hPa"}},
		ResultHTML:    fragment,
		ResultVisible: true,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, `<div id="result-display">`+fragment+`</div>`)
	assert.Contains(t, html, `id="w-temp">31°C</span>`)
	assert.Contains(t, html, `<section id="result-area" class="card">`)
	assert.Equal(t, 1, strings.Count(html, "<!doctype html>"))
}

func TestSnapshot_EscapesReadoutText(t *testing.T) {
	c, err := templates.Snapshot(domain.Dashboard{
		Profile:  "dashboard",
		Readouts: []domain.Readout{{ID: "w-temp", Label: "Temperature", Text: "<script>x</script>°C"}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	assert.NotContains(t, buf.String(), "<script>x</script>")
	assert.Contains(t, buf.String(), `class="card hidden"`)
}

func TestIndex_EscapesAttributesAndOptions(t *testing.T) {
	html := renderIndex(t, templates.PageConfig{
		Profile: controller.Dashboard(),
		Options: map[string][]templates.Option{
			"city": {{Value: `x" onload="alert(1)`, Label: "<b>Qatif</b>"}},
		},
		WasmURL: `/static/"palmwatch".wasm`,
	})

	assert.NotContains(t, html, `onload="alert(1)"`)
	assert.Contains(t, html, `value="x&#34; onload=&#34;alert(1)"`)
	assert.Contains(t, html, "&lt;b&gt;Qatif&lt;/b&gt;")
	assert.Contains(t, html, `data-wasm="/static/&#34;palmwatch&#34;.wasm"`)
}

func TestSnapshot_HiddenRegionKeepsFragmentOut(t *testing.T) {
	c, err := templates.Snapshot(domain.Dashboard{Profile: "risk"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, `<section id="result-area" class="card hidden">`)
	assert.Contains(t, html, `<div id="result-display"></div>`)
	assert.Contains(t, html, "<title>Palm Risk Assessment</title>")
	assert.NotContains(t, html, "Current Conditions")
}

func TestSnapshot_UnknownProfile(t *testing.T) {
	_, err := templates.Snapshot(domain.Dashboard{Profile: "orchard"})
	require.Error(t, err)
}
