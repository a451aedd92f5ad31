// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the CV assistant backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dogankeles/cvchat/internal/diag"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents a failed backend call.
type ClientError struct {
	Type    ErrorType
	Message string
	Status  int // HTTP status code, 0 when the request never completed
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors. The chat view collapses all of them
// into one retry message, so the category exists for diagnostics only.
type ErrorType int

const (
	ErrTypeUnknown   ErrorType = iota
	ErrTypeTransport           // connection refused, DNS failure, timeout
	ErrTypeProtocol            // server reachable but answered non-2xx
	ErrTypeDecode              // 2xx but the body did not parse
)

// String returns the journal label for the error type.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeTransport:
		return "transport"
	case ErrTypeProtocol:
		return "protocol"
	case ErrTypeDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the backend client.
type ClientConfig struct {
	// BaseURL is the backend API base URL
	BaseURL string

	// Timeout for requests (default: 30s)
	Timeout time.Duration

	// Logger receives request diagnostics (default: no-op)
	Logger *zap.Logger

	// Journal records resolved calls locally (optional)
	Journal *diag.Journal
}

// DefaultBaseURL is the production backend.
const DefaultBaseURL = "https://lengthy-sarina-cypralex-fb6a4e7e.koyeb.app"

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: DefaultBaseURL,
		Timeout: 30 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the CV assistant backend.
//
// The Client is thread-safe for concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new backend client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new backend client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// OPERATIONS
// =============================================================================

// SendQuery posts a chat question and returns the assistant's answer.
func (c *Client) SendQuery(ctx context.Context, query string, profileID int) (*ChatResponse, error) {
	var resp ChatResponse
	req := ChatRequest{Query: query, ProfileID: profileID}
	if err := c.post(ctx, "chat", "/api/chat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RequestDownload submits the CV download form.
func (c *Client) RequestDownload(ctx context.Context, req DownloadRequest) (*DownloadResponse, error) {
	var resp DownloadResponse
	if err := c.post(ctx, "download", "/api/cv/request-download", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// post runs one JSON round trip and records its outcome.
func (c *Client) post(ctx context.Context, flow, path string, body, out interface{}) error {
	requestID := uuid.NewString()
	start := time.Now()

	payload, err := json.Marshal(body)
	if err != nil {
		return c.fail(flow, requestID, start, &ClientError{
			Type:    ErrTypeUnknown,
			Message: "failed to encode request",
			Cause:   err,
		})
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return c.fail(flow, requestID, start, &ClientError{
			Type:    ErrTypeUnknown,
			Message: "failed to create request",
			Cause:   err,
		})
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return c.fail(flow, requestID, start, &ClientError{
			Type:    ErrTypeTransport,
			Message: "request failed",
			Cause:   err,
		})
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(httpResp.Body, 4096))
		return c.fail(flow, requestID, start, &ClientError{
			Type:    ErrTypeProtocol,
			Message: "server returned " + httpResp.Status,
			Status:  httpResp.StatusCode,
		})
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return c.fail(flow, requestID, start, &ClientError{
			Type:    ErrTypeDecode,
			Message: "invalid response body",
			Status:  httpResp.StatusCode,
			Cause:   err,
		})
	}

	c.logger.Info("request completed",
		zap.String("request_id", requestID),
		zap.String("flow", flow),
		zap.Int("status", httpResp.StatusCode),
		zap.Duration("duration", time.Since(start)))
	c.journal(diag.Entry{
		RequestID:  requestID,
		Flow:       flow,
		Outcome:    "ok",
		HTTPStatus: httpResp.StatusCode,
		Duration:   time.Since(start),
	})
	return nil
}

// fail logs and journals one failed call, then returns its error.
func (c *Client) fail(flow, requestID string, start time.Time, cerr *ClientError) error {
	c.logger.Warn("request failed",
		zap.String("request_id", requestID),
		zap.String("flow", flow),
		zap.String("cause", cerr.Type.String()),
		zap.Int("status", cerr.Status),
		zap.Duration("duration", time.Since(start)),
		zap.Error(cerr))
	c.journal(diag.Entry{
		RequestID:  requestID,
		Flow:       flow,
		Outcome:    "error",
		Cause:      cerr.Type.String(),
		HTTPStatus: cerr.Status,
		Duration:   time.Since(start),
	})
	return cerr
}

func (c *Client) journal(e diag.Entry) {
	if c.config.Journal == nil {
		return
	}
	if err := c.config.Journal.Record(e); err != nil {
		c.logger.Warn("journal write failed", zap.Error(err))
	}
}
