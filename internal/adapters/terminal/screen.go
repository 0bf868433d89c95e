// Package terminal renders the controller's page onto a terminal. The
// trigger's label changes are printed as progress lines, alerts go to a
// separate writer (stderr in the CLI), and scrolling the result region into
// view prints the dashboard.
package terminal

import (
	"fmt"
	"io"
	"sync"
	"text/tabwriter"

	"github.com/csg33k/palmwatch/internal/controller"
	"github.com/csg33k/palmwatch/internal/domain"
	"github.com/csg33k/palmwatch/internal/ports"
)

// Screen holds the terminal page state for one profile.
type Screen struct {
	mu      sync.Mutex
	out     io.Writer
	alerts  io.Writer
	profile controller.Profile

	label    string
	disabled bool
	html     string
	visible  bool
	readouts map[string]string
}

func New(out, alerts io.Writer, profile controller.Profile) *Screen {
	return &Screen{
		out:      out,
		alerts:   alerts,
		profile:  profile,
		readouts: make(map[string]string, len(profile.Readouts)),
	}
}

// Elements returns handles bound to this screen. The form comes from the
// caller because the terminal has no inputs of its own.
func (s *Screen) Elements(form ports.FormSource) controller.Elements {
	ro := make(map[string]ports.Readout, len(s.profile.Readouts))
	for _, r := range s.profile.Readouts {
		ro[r.Key] = readout{s: s, key: r.Key}
	}
	return controller.Elements{
		Trigger:  button{s},
		Form:     form,
		Results:  region{s},
		Alerts:   s,
		Readouts: ro,
	}
}

func (s *Screen) Alert(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.alerts, "! %s\n", message)
}

// Snapshot captures what the page currently shows.
func (s *Screen) Snapshot() domain.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := domain.Dashboard{
		Profile:         s.profile.Name,
		TriggerLabel:    s.label,
		TriggerDisabled: s.disabled,
		ResultHTML:      s.html,
		ResultVisible:   s.visible,
	}
	for _, r := range s.profile.Readouts {
		d.Readouts = append(d.Readouts, domain.Readout{ID: r.ID, Label: r.Label, Text: s.readouts[r.Key]})
	}
	return d
}

// print writes the readouts and result region. Caller holds mu.
func (s *Screen) print() {
	if len(s.profile.Readouts) > 0 {
		tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
		for _, r := range s.profile.Readouts {
			fmt.Fprintf(tw, "%s\t%s\n", r.Label, s.readouts[r.Key])
		}
		tw.Flush()
		fmt.Fprintln(s.out)
	}
	fmt.Fprintln(s.out, s.html)
}

type button struct{ s *Screen }

func (b button) SetLabel(text string) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	if text == b.s.label {
		return
	}
	b.s.label = text
	fmt.Fprintf(b.s.out, "[ %s ]\n", text)
}

func (b button) SetDisabled(d bool) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	b.s.disabled = d
}

type region struct{ s *Screen }

func (r region) SetHTML(html string) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.html = html
}

func (r region) Reveal() {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.visible = true
}

func (r region) ScrollIntoView() {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.visible {
		r.s.print()
	}
}

type readout struct {
	s   *Screen
	key string
}

func (r readout) SetText(text string) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.readouts[r.key] = text
}
