package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/palmwatch/internal/adapters/pdf"
	"github.com/csg33k/palmwatch/internal/domain"
)

func TestGenerateReport_Dashboard(t *testing.T) {
	d := domain.Dashboard{
		Profile: domain.ProfileDashboard,
		Readouts: []domain.Readout{
			{ID: "w-temp", Label: "Temperature", Text: "24°C"},
			{ID: "w-pres", Label: "Pressure", Text: "1012 hPa"},
		},
		ResultHTML: `<ul class='risk-list'>
			<li class='risk-high'><div class='risk-header'><strong>Red Palm Weevil</strong>
			<span class='badge'>High</span></div><span class='reason'>Active flight temperature range.</span></li>
		</ul>`,
		ResultVisible: true,
	}

	var buf bytes.Buffer
	require.NoError(t, pdf.GenerateReport(d, time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC), &buf))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 500)
}

func TestGenerateReport_NothingRendered(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, pdf.GenerateReport(domain.Dashboard{Profile: domain.ProfileRisk}, time.Now(), &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestFlattenFragment(t *testing.T) {
	tests := map[string]struct {
		in, want string
	}{
		"list": {
			in:   "<ul class='risk-list'>\n  <li class='risk-low'>\n    <strong>Al Wijam</strong>\n    <em>Negligible</em>\n  </li>\n</ul>",
			want: "- <b>Al Wijam</b> <i>Negligible</i> <br> <br>",
		},
		"attributes on inline tags": {
			in:   `<p style="color:red">Flight <strong class="hot">active</strong> <EM data-x=1>now</EM></p>`,
			want: "Flight <b>active</b> <i>now</i><br>",
		},
		"unknown tags dropped": {
			in:   "<div class='risk-header'><span class='badge'>High</span><br/>Check fronds</div>",
			want: "High<br>Check fronds<br>",
		},
		"entities decoded": {
			in:   "<p>Temp &gt; 35 &amp; RH &lt; 20</p>",
			want: "Temp > 35 & RH < 20<br>",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, pdf.FlattenFragment(tt.in))
		})
	}
}

func TestGenerateReport_AttributedFragment(t *testing.T) {
	d := domain.Dashboard{
		Profile:       domain.ProfileRisk,
		ResultHTML:    `<p style="margin:0"><strong class="risk">Dubas Bug</strong> <em class="note">moderate</em></p>`,
		ResultVisible: true,
	}
	var buf bytes.Buffer
	require.NoError(t, pdf.GenerateReport(d, time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC), &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
