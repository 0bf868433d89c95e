package domain

import (
	"errors"
	"strings"
)

// ErrBusy is returned when a submission is attempted while another one from
// the same controller is still in flight.
var ErrBusy = errors.New("submission already in flight")

// ValidationError lists required fields that were empty. No request is sent.
type ValidationError struct {
	Missing []Field
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = f.Name
	}
	return "missing required fields: " + strings.Join(names, ", ")
}

// ServerError carries the message the server put in the envelope's error key.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string { return "server reported error: " + e.Message }

// TransportError covers everything between sending the request and having a
// usable envelope: connection failures, unreadable or non-JSON bodies, and
// envelopes missing data the renderer needs.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }
