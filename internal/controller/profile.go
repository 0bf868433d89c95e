package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/csg33k/palmwatch/internal/domain"
)

// Messages shown to the user.
const (
	ServerErrorPrefix = "System Error: "
	ConnectionFailed  = "Connection Failed. Please check your internet or server status."
)

// Renderer writes a successful envelope into the page. It must check
// everything it needs before touching any element, so a rejected envelope
// leaves the page as it was.
type Renderer func(env *domain.Envelope, el Elements) error

// Profile is the per-page configuration of the controller: which fields make
// up the payload, how the trigger is labelled, and how success is rendered.
type Profile struct {
	Name       string
	Fields     []domain.Field
	ReadyLabel string
	BusyLabel  string
	// Readouts lists the readout handles the renderer writes to, by summary key.
	Readouts []ReadoutSpec
	Render   Renderer
}

// ReadoutSpec binds a weather_summary key to its element and unit suffix.
type ReadoutSpec struct {
	Key    string // weather_summary key
	ID     string // element ID on the page
	Label  string
	Suffix string
}

var dashboardReadouts = []ReadoutSpec{
	{Key: "temp", ID: "w-temp", Label: "Temperature", Suffix: "°C"},
	{Key: "rh", ID: "w-hum", Label: "Humidity", Suffix: "%"},
	{Key: "dew", ID: "w-dew", Label: "Dew Point", Suffix: "°C"},
	{Key: "wind", ID: "w-wind", Label: "Wind", Suffix: " km/h"},
	{Key: "vis", ID: "w-vis", Label: "Visibility", Suffix: " km"},
	{Key: "pressure", ID: "w-pres", Label: "Pressure", Suffix: " hPa"},
}

// Dashboard is the weather dashboard page: one city selector, six readouts.
func Dashboard() Profile {
	return Profile{
		Name:       domain.ProfileDashboard,
		Fields:     []domain.Field{{Name: "city", Label: "City"}},
		ReadyLabel: "Analyze Satellite Data",
		BusyLabel:  "Processing Telemetry...",
		Readouts:   dashboardReadouts,
		Render:     renderDashboard,
	}
}

// Risk is the manual risk form: six observations, three of them required.
func Risk() Profile {
	return Profile{
		Name: domain.ProfileRisk,
		Fields: []domain.Field{
			{Name: "location", Label: "Location"},
			{Name: "temp", Label: "Temperature", Required: true},
			{Name: "humidity", Label: "Humidity", Required: true},
			{Name: "age", Label: "Tree Age", Required: true},
			{Name: "rain", Label: "Rainfall"},
			{Name: "soil", Label: "Soil Type"},
		},
		ReadyLabel: "Assess Risk",
		BusyLabel:  "Analyzing...",
		Render:     renderResult,
	}
}

// ProfileByName resolves a configured profile name.
func ProfileByName(name string) (Profile, error) {
	switch name {
	case domain.ProfileDashboard:
		return Dashboard(), nil
	case domain.ProfileRisk:
		return Risk(), nil
	default:
		return Profile{}, fmt.Errorf("unknown profile %q", name)
	}
}

// Required returns the fields that must be non-empty before submitting.
func (p Profile) Required() []domain.Field {
	var out []domain.Field
	for _, f := range p.Fields {
		if f.Required {
			out = append(out, f)
		}
	}
	return out
}

// ValidationMessage is the alert text for a form with missing required fields.
func (p Profile) ValidationMessage() string {
	req := p.Required()
	labels := make([]string, len(req))
	for i, f := range req {
		labels[i] = f.Label
	}
	return "Please fill in the required fields: " + strings.Join(labels, ", ") + "."
}

func renderResult(env *domain.Envelope, el Elements) error {
	el.Results.SetHTML(env.Result)
	el.Results.Reveal()
	el.Results.ScrollIntoView()
	return nil
}

func renderDashboard(env *domain.Envelope, el Elements) error {
	ws := env.WeatherSummary
	if ws == nil {
		return errors.New("envelope has no weather_summary")
	}
	values := map[string]domain.Scalar{
		"temp":     ws.Temp,
		"rh":       ws.RH,
		"dew":      ws.Dew,
		"wind":     ws.Wind,
		"vis":      ws.Vis,
		"pressure": ws.Pressure,
	}
	for _, r := range dashboardReadouts {
		el.Readouts[r.Key].SetText(formatReadout(values[r.Key], r.Suffix))
	}
	return renderResult(env, el)
}

// formatReadout appends the unit to a present value. A key missing from the
// summary shows "--" without a unit.
func formatReadout(v domain.Scalar, suffix string) string {
	if !v.Present() {
		return "--"
	}
	return v.String() + suffix
}
