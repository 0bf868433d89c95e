//go:build js && wasm

// Package dom binds the controller's element handles to a live page through
// syscall/js.
package dom

import (
	"context"
	"fmt"
	"syscall/js"

	"github.com/csg33k/palmwatch/internal/controller"
	"github.com/csg33k/palmwatch/internal/ports"
)

// Document wraps window.document.
type Document struct {
	doc js.Value
	win js.Value
}

func New() Document {
	win := js.Global()
	return Document{doc: win.Get("document"), win: win}
}

// Origin is window.location.origin.
func (d Document) Origin() string {
	return d.win.Get("location").Get("origin").String()
}

// Element looks up id, failing when the page does not carry it.
func (d Document) Element(id string) (js.Value, error) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return js.Value{}, fmt.Errorf("element #%s not found", id)
	}
	return el, nil
}

// Bind resolves every element profile p needs.
func (d Document) Bind(p controller.Profile, triggerID, areaID, displayID string) (controller.Elements, js.Value, error) {
	btn, err := d.Element(triggerID)
	if err != nil {
		return controller.Elements{}, js.Value{}, err
	}
	area, err := d.Element(areaID)
	if err != nil {
		return controller.Elements{}, js.Value{}, err
	}
	display, err := d.Element(displayID)
	if err != nil {
		return controller.Elements{}, js.Value{}, err
	}
	for _, f := range p.Fields {
		if _, err := d.Element(f.Name); err != nil {
			return controller.Elements{}, js.Value{}, err
		}
	}
	readouts := make(map[string]ports.Readout, len(p.Readouts))
	for _, r := range p.Readouts {
		el, err := d.Element(r.ID)
		if err != nil {
			return controller.Elements{}, js.Value{}, err
		}
		readouts[r.Key] = Readout{el}
	}
	return controller.Elements{
		Trigger:  Button{btn},
		Form:     Form{d},
		Results:  Region{area: area, display: display},
		Alerts:   Alerter{d.win},
		Readouts: readouts,
	}, btn, nil
}

type Button struct{ el js.Value }

func (b Button) SetLabel(text string)      { b.el.Set("innerText", text) }
func (b Button) SetDisabled(disabled bool) { b.el.Set("disabled", disabled) }

// Form reads input values by element ID at call time.
type Form struct{ d Document }

func (f Form) Value(_ context.Context, field string) (string, error) {
	el, err := f.d.Element(field)
	if err != nil {
		return "", err
	}
	return el.Get("value").String(), nil
}

// Region is the result area plus the display node inside it.
type Region struct {
	area    js.Value
	display js.Value
}

func (r Region) SetHTML(html string) { r.display.Set("innerHTML", html) }
func (r Region) Reveal()             { r.area.Get("classList").Call("remove", "hidden") }

func (r Region) ScrollIntoView() {
	r.area.Call("scrollIntoView", map[string]any{"behavior": "smooth"})
}

type Readout struct{ el js.Value }

func (r Readout) SetText(text string) { r.el.Set("innerText", text) }

type Alerter struct{ win js.Value }

func (a Alerter) Alert(message string) { a.win.Call("alert", message) }
