// Package controller implements the form submission controller: it reads the
// profile's fields, POSTs them to /assess through an Assessor, and renders the
// envelope into injected element handles.
//
// A submission walks Idle → Validating → (abort → Idle) | Submitting →
// (ServerError | TransportError | Success) → Idle. Whatever path is taken after
// the trigger goes busy, it is restored to its ready label and re-enabled.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/jonboulle/clockwork"

	"github.com/csg33k/palmwatch/internal/domain"
	"github.com/csg33k/palmwatch/internal/observability"
	"github.com/csg33k/palmwatch/internal/ports"
)

// FormUnavailable is alerted when the form itself cannot be read.
const FormUnavailable = "Could not read the form. Please try again."

// Elements is the set of element handles a controller drives. Readouts is
// keyed by weather_summary key and only used by profiles that declare
// readouts.
type Elements struct {
	Trigger  ports.Trigger
	Form     ports.FormSource
	Results  ports.ResultRegion
	Alerts   ports.Alerter
	Readouts map[string]ports.Readout
}

type Controller struct {
	profile  Profile
	el       Elements
	assessor ports.Assessor
	logger   *slog.Logger
	metrics  *observability.Metrics
	clock    clockwork.Clock

	inFlight atomic.Bool
}

type Option func(*Controller)

func WithLogger(l *slog.Logger) Option { return func(c *Controller) { c.logger = l } }

func WithMetrics(m *observability.Metrics) Option { return func(c *Controller) { c.metrics = m } }

func WithClock(clk clockwork.Clock) Option { return func(c *Controller) { c.clock = clk } }

// New binds a profile to its element handles and transport, then puts the
// trigger in its ready state. It fails if any handle the profile needs is
// missing.
func New(profile Profile, el Elements, assessor ports.Assessor, opts ...Option) (*Controller, error) {
	if err := checkElements(profile, el); err != nil {
		return nil, fmt.Errorf("profile %s: %w", profile.Name, err)
	}
	if assessor == nil {
		return nil, errors.New("assessor is required")
	}
	c := &Controller{
		profile:  profile,
		el:       el,
		assessor: assessor,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = observability.DiscardLogger()
	}
	c.logger = c.logger.With("profile", profile.Name)

	c.el.Trigger.SetLabel(profile.ReadyLabel)
	c.el.Trigger.SetDisabled(false)
	return c, nil
}

func checkElements(p Profile, el Elements) error {
	switch {
	case p.Render == nil:
		return errors.New("renderer is required")
	case el.Trigger == nil:
		return errors.New("trigger element is required")
	case el.Form == nil:
		return errors.New("form is required")
	case el.Results == nil:
		return errors.New("result region is required")
	case el.Alerts == nil:
		return errors.New("alerter is required")
	}
	for _, r := range p.Readouts {
		if el.Readouts[r.Key] == nil {
			return fmt.Errorf("readout %s (#%s) is required", r.Key, r.ID)
		}
	}
	return nil
}

// Profile returns the profile the controller was built with.
func (c *Controller) Profile() Profile { return c.profile }

// Submit runs one submission to completion. The user has already been
// alerted when an error is returned; the error is for the caller's logs and
// exit status. A second call while one is running returns domain.ErrBusy
// without touching any element.
func (c *Controller) Submit(ctx context.Context) (outcome domain.Outcome, err error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		c.countOutcome(domain.OutcomeBusy)
		return domain.OutcomeBusy, domain.ErrBusy
	}
	defer c.inFlight.Store(false)

	start := c.clock.Now()
	defer func() {
		c.countOutcome(outcome)
		if c.metrics != nil {
			c.metrics.SubmissionDuration.WithLabelValues(c.profile.Name).Observe(c.clock.Since(start).Seconds())
		}
	}()

	values, err := c.readForm(ctx)
	if err != nil {
		c.logger.Error("read form", "error", err)
		c.el.Alerts.Alert(FormUnavailable)
		return domain.OutcomeValidationAbort, err
	}
	if missing := c.missingFields(values); len(missing) > 0 {
		verr := &domain.ValidationError{Missing: missing}
		c.logger.Debug("validation failed", "error", verr)
		c.el.Alerts.Alert(c.profile.ValidationMessage())
		return domain.OutcomeValidationAbort, verr
	}

	c.el.Trigger.SetLabel(c.profile.BusyLabel)
	c.el.Trigger.SetDisabled(true)
	defer func() {
		c.el.Trigger.SetLabel(c.profile.ReadyLabel)
		c.el.Trigger.SetDisabled(false)
	}()

	payload := make(domain.Payload, len(c.profile.Fields))
	for _, f := range c.profile.Fields {
		payload[f.Name] = values[f.Name]
	}

	if c.metrics != nil {
		c.metrics.InFlight.Inc()
	}
	env, err := c.assessor.Assess(ctx, payload)
	if c.metrics != nil {
		c.metrics.InFlight.Dec()
	}
	if err != nil {
		return c.transportFailure("assess", err)
	}

	if env.Failed() {
		msg := env.Error.String()
		c.logger.Warn("server reported error", "error", msg)
		c.el.Alerts.Alert(ServerErrorPrefix + msg)
		return domain.OutcomeServerError, &domain.ServerError{Message: msg}
	}

	if err := c.profile.Render(env, c.el); err != nil {
		return c.transportFailure("render envelope", err)
	}
	c.logger.Info("assessment rendered", "result_bytes", len(env.Result))
	return domain.OutcomeSuccess, nil
}

func (c *Controller) readForm(ctx context.Context) (map[string]string, error) {
	values := make(map[string]string, len(c.profile.Fields))
	for _, f := range c.profile.Fields {
		v, err := c.el.Form.Value(ctx, f.Name)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		values[f.Name] = v
	}
	return values, nil
}

func (c *Controller) missingFields(values map[string]string) []domain.Field {
	var missing []domain.Field
	for _, f := range c.profile.Required() {
		if values[f.Name] == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

func (c *Controller) transportFailure(op string, err error) (domain.Outcome, error) {
	var te *domain.TransportError
	if !errors.As(err, &te) {
		te = &domain.TransportError{Op: op, Err: err}
	}
	c.logger.Error("assessment failed", "error", te)
	c.el.Alerts.Alert(ConnectionFailed)
	return domain.OutcomeTransportError, te
}

func (c *Controller) countOutcome(o domain.Outcome) {
	if c.metrics == nil {
		return
	}
	c.metrics.Submissions.WithLabelValues(c.profile.Name, string(o)).Inc()
}
