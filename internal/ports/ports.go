package ports

import (
	"context"

	"github.com/csg33k/palmwatch/internal/domain"
)

// Assessor sends one payload to the assessment endpoint and returns the
// decoded envelope. Any failure to obtain a decodable envelope is reported as
// a *domain.TransportError.
type Assessor interface {
	Assess(ctx context.Context, p domain.Payload) (*domain.Envelope, error)
}

// FormSource reads the current value of a named input. Implementations must
// not cache: every call reflects what the input holds right now.
type FormSource interface {
	Value(ctx context.Context, field string) (string, error)
}

// Trigger is the control that starts a submission (a button on a page).
type Trigger interface {
	SetLabel(text string)
	SetDisabled(disabled bool)
}

// ResultRegion is the initially hidden container that receives the
// server's HTML fragment.
type ResultRegion interface {
	// SetHTML replaces the region's markup with html, unmodified.
	SetHTML(html string)
	Reveal()
	ScrollIntoView()
}

// Readout displays a single scalar value as text.
type Readout interface {
	SetText(text string)
}

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(message string)
}

// FormRepository persists form values between CLI invocations.
type FormRepository interface {
	SetValue(ctx context.Context, profile, field, value string) error
	GetValue(ctx context.Context, profile, field string) (string, error)
	ListValues(ctx context.Context, profile string) (map[string]string, error)
	ClearValues(ctx context.Context, profile string) error
}
