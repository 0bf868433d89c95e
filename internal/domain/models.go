package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Profile names select which form a page (or CLI invocation) drives.
const (
	ProfileDashboard = "dashboard"
	ProfileRisk      = "risk"
)

// Payload is the flat field-name → value object POSTed to /assess.
// Values are whatever the inputs held at submission time, possibly empty.
type Payload map[string]string

// Field describes one named form input.
type Field struct {
	Name     string // JSON key and input ID, e.g. "temp"
	Label    string // human label used in validation messages and the host page
	Required bool
}

// Envelope is the JSON body returned by /assess.
type Envelope struct {
	// Error signals failure when truthy. The server normally sends a string,
	// but any JSON value is accepted.
	Error Scalar `json:"error,omitempty"`
	// Result is an HTML fragment rendered verbatim.
	Result string `json:"result"`
	// WeatherSummary is only part of the dashboard contract.
	WeatherSummary *WeatherSummary `json:"weather_summary,omitempty"`
}

// Failed reports whether the server flagged an error.
func (e *Envelope) Failed() bool { return e.Error.Truthy() }

// WeatherSummary carries the six dashboard readouts. Visibility is already
// in kilometres.
type WeatherSummary struct {
	Temp     Scalar `json:"temp"`
	RH       Scalar `json:"rh"`
	Dew      Scalar `json:"dew"`
	Wind     Scalar `json:"wind"`
	Vis      Scalar `json:"vis"`
	Pressure Scalar `json:"pressure"`
}

// Scalar holds a raw JSON value (usually a number or string) and converts it
// to display text the way a browser would when concatenating it to a string.
type Scalar struct {
	raw json.RawMessage
}

// ScalarOf builds a Scalar from a Go value; used by tests and fakes.
func ScalarOf(v any) Scalar {
	b, err := json.Marshal(v)
	if err != nil {
		return Scalar{}
	}
	return Scalar{raw: b}
}

func (s *Scalar) UnmarshalJSON(b []byte) error {
	s.raw = append(s.raw[:0], b...)
	return nil
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	if len(s.raw) == 0 {
		return []byte("null"), nil
	}
	return s.raw, nil
}

// Present reports whether the key appeared in the JSON object at all.
func (s Scalar) Present() bool { return len(s.raw) > 0 }

// String returns the display text. Numbers use the shortest decimal form, so
// 8.0 prints as "8".
func (s Scalar) String() string {
	raw := bytes.TrimSpace(s.raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var str string
		if err := json.Unmarshal(raw, &str); err == nil {
			return str
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if f, err := strconv.ParseFloat(string(raw), 64); err == nil {
			return formatNumber(f)
		}
	}
	return string(raw)
}

// formatNumber prints f the way JavaScript's Number#toString does: shortest
// round-trip digits, plain decimal inside [1e-6, 1e21), exponent form outside.
func formatNumber(f float64) string {
	if f == 0 {
		return "0" // also -0
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Truthy follows JavaScript truthiness: absent, null, false, 0 and "" are
// falsy; everything else, including empty objects, is truthy.
func (s Scalar) Truthy() bool {
	raw := bytes.TrimSpace(s.raw)
	if len(raw) == 0 {
		return false
	}
	switch string(raw) {
	case "null", "false", `""`:
		return false
	}
	if f, err := strconv.ParseFloat(string(raw), 64); err == nil {
		return f != 0
	}
	return true
}

// Outcome is the terminal path a submission took.
type Outcome string

const (
	OutcomeSuccess         Outcome = "success"
	OutcomeServerError     Outcome = "server_error"
	OutcomeTransportError  Outcome = "transport_error"
	OutcomeValidationAbort Outcome = "validation_abort"
	OutcomeBusy            Outcome = "busy"
)

// Readout is one labelled display value on a rendered dashboard.
type Readout struct {
	ID    string // element ID, e.g. "w-temp"
	Label string
	Text  string
}

// Dashboard is a snapshot of what a page shows after a submission. The
// terminal view produces it and the HTML and PDF renderers consume it.
type Dashboard struct {
	Profile         string
	TriggerLabel    string
	TriggerDisabled bool
	Readouts        []Readout
	ResultHTML      string
	ResultVisible   bool
}
