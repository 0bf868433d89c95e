// Package assessapi is the HTTP transport for the assessment endpoint.
package assessapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/csg33k/palmwatch/internal/domain"
	"github.com/csg33k/palmwatch/internal/observability"
)

// Path is the fixed endpoint every submission is POSTed to.
const Path = "/assess"

// RequestIDHeader carries a per-submission UUID for log correlation.
const RequestIDHeader = "X-Request-ID"

// Client implements ports.Assessor over HTTP. It never retries and sets no
// timeout of its own; the caller's context bounds the request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for the service at baseURL (scheme and host,
// no trailing path). An empty baseURL yields relative requests, which is what
// the browser build wants.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = observability.DiscardLogger()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Endpoint is the full URL submissions go to.
func (c *Client) Endpoint() string { return c.baseURL + Path }

// Assess POSTs p as JSON and decodes the response body as an envelope. The
// status code is not part of the contract: any body that decodes is returned.
func (c *Client) Assess(ctx context.Context, p domain.Payload) (*domain.Envelope, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, &domain.TransportError{Op: "encode payload", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, &domain.TransportError{Op: "create request", Err: err}
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, reqID)

	log := c.logger.With("request_id", reqID)
	log.Debug("posting assessment", "url", req.URL.String(), "fields", len(p))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Op: "post " + Path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn("unexpected status from assessment service", "status", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Op: "read response", Err: err}
	}
	env, err := decodeEnvelope(raw)
	if err != nil {
		return nil, &domain.TransportError{Op: "decode envelope", Err: err}
	}
	return env, nil
}

func decodeEnvelope(raw []byte) (*domain.Envelope, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty response body")
	}
	if trimmed[0] != '{' {
		return nil, fmt.Errorf("response is not a JSON object: %.40q", trimmed)
	}
	var env domain.Envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	return &env, nil
}
