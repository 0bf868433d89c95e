package templates

import "github.com/csg33k/palmwatch/internal/controller"

// Element IDs the browser build binds to.
const (
	TriggerID       = "calc-btn"
	ResultAreaID    = "result-area"
	ResultDisplayID = "result-display"
)

// Option is one entry of a select input.
type Option struct {
	Value string
	Label string
}

// PageConfig describes the host page for the browser build.
type PageConfig struct {
	Profile controller.Profile
	// Options fills select inputs, keyed by field name. Fields without
	// options render as text inputs.
	Options map[string][]Option
	// WasmURL and LoaderURL point at the compiled controller and Go's
	// wasm_exec.js.
	WasmURL   string
	LoaderURL string
}
