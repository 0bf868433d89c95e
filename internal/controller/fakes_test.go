package controller_test

import (
	"context"
	"errors"
	"sync"

	"github.com/csg33k/palmwatch/internal/controller"
	"github.com/csg33k/palmwatch/internal/domain"
	"github.com/csg33k/palmwatch/internal/ports"
)

// fakeButton records every state the trigger passes through.
type fakeButton struct {
	mu       sync.Mutex
	label    string
	disabled bool
	labels   []string
}

func (b *fakeButton) SetLabel(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.label = text
	b.labels = append(b.labels, text)
}

func (b *fakeButton) SetDisabled(d bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disabled = d
}

func (b *fakeButton) state() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.label, b.disabled
}

type fakeForm struct {
	mu     sync.Mutex
	values map[string]string
	err    error
}

func (f *fakeForm) Value(_ context.Context, field string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.values[field], nil
}

func (f *fakeForm) set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[field] = value
}

type fakeRegion struct {
	html     string
	visible  bool
	scrolled bool
	writes   int
}

func (r *fakeRegion) SetHTML(html string) { r.html = html; r.writes++ }
func (r *fakeRegion) Reveal()             { r.visible = true }
func (r *fakeRegion) ScrollIntoView()     { r.scrolled = true }

type fakeText struct{ text string }

func (t *fakeText) SetText(text string) { t.text = text }

type fakeAlerts struct {
	mu       sync.Mutex
	messages []string
	// onAlert runs while the alert is "open"; the trigger must still be busy.
	onAlert func()
}

func (a *fakeAlerts) Alert(msg string) {
	a.mu.Lock()
	a.messages = append(a.messages, msg)
	hook := a.onAlert
	a.mu.Unlock()
	if hook != nil {
		hook()
	}
}

func (a *fakeAlerts) all() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.messages...)
}

// page is a complete set of fake elements for either profile.
type page struct {
	button   *fakeButton
	form     *fakeForm
	region   *fakeRegion
	alerts   *fakeAlerts
	readouts map[string]*fakeText
}

func newPage(values map[string]string) *page {
	p := &page{
		button:   &fakeButton{},
		form:     &fakeForm{values: values},
		region:   &fakeRegion{},
		alerts:   &fakeAlerts{},
		readouts: map[string]*fakeText{},
	}
	for _, r := range controller.Dashboard().Readouts {
		p.readouts[r.Key] = &fakeText{}
	}
	return p
}

func (p *page) elements() controller.Elements {
	ro := make(map[string]ports.Readout, len(p.readouts))
	for k, v := range p.readouts {
		ro[k] = v
	}
	return controller.Elements{
		Trigger:  p.button,
		Form:     p.form,
		Results:  p.region,
		Alerts:   p.alerts,
		Readouts: ro,
	}
}

// assessorFunc adapts a function to ports.Assessor.
type assessorFunc func(ctx context.Context, p domain.Payload) (*domain.Envelope, error)

func (f assessorFunc) Assess(ctx context.Context, p domain.Payload) (*domain.Envelope, error) {
	return f(ctx, p)
}

var errBoom = errors.New("boom")
