package templates

import (
	"github.com/a-h/templ"

	"github.com/csg33k/palmwatch/internal/controller"
	"github.com/csg33k/palmwatch/internal/domain"
)

// Snapshot renders a finished dashboard as a standalone page, with readouts
// filled in and the result fragment injected as-is.
func Snapshot(d domain.Dashboard) (templ.Component, error) {
	p, err := controller.ProfileByName(d.Profile)
	if err != nil {
		return nil, err
	}
	texts := make(map[string]string, len(d.Readouts))
	for _, r := range d.Readouts {
		texts[r.ID] = r.Text
	}
	return snapshotPage(p, texts, d.ResultHTML, d.ResultVisible), nil
}
