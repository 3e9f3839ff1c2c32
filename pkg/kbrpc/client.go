package kbrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"sync/atomic"
	"time"
)

// Client calls the kb_Msuite JSON-RPC service.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     *slog.Logger
	requestID  atomic.Int64
}

// NewClient creates a new client with the given configuration.
func NewClient(config Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
		logger: logger.With("component", "kbrpc-client"),
	}
}

// URL returns the configured endpoint.
func (c *Client) URL() string {
	return c.config.URL
}

// Token returns the current authentication token.
func (c *Client) Token() string {
	return c.config.Token
}

// SetToken updates the authentication token.
func (c *Client) SetToken(token string) {
	c.config.Token = token
}

func (c *Client) nextID() string {
	id := c.requestID.Add(1)
	return fmt.Sprintf("req-%d-%d", time.Now().UnixNano(), id)
}

// Call invokes method with positional params. Each param is marshaled on
// its own so records keep their declared key order on the wire.
func (c *Client) Call(ctx context.Context, method string, params ...any) (*Response, error) {
	raw := make([]json.RawMessage, 0, len(params))
	for i, p := range params {
		b, err := json.Marshal(p)
		if err != nil {
			return nil, WrapError(method, fmt.Errorf("marshaling param %d: %w", i, err))
		}
		raw = append(raw, b)
	}
	return c.call(ctx, method, raw)
}

func (c *Client) call(ctx context.Context, method string, params []json.RawMessage) (*Response, error) {
	op := method
	logger := c.logger.With("method", method, "url", c.config.URL)

	req := Request{
		ID:      c.nextID(),
		Method:  method,
		Version: Version,
		Params:  params,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, WrapError(op, fmt.Errorf("marshaling request: %w", err))
	}

	logger.Debug("sending request", "request_id", req.ID)

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.config.RetryDelay * time.Duration(math.Pow(2, float64(attempt-1)))
			logger.Debug("retrying after delay", "attempt", attempt, "delay", delay)

			select {
			case <-ctx.Done():
				return nil, WrapError(op, ctx.Err())
			case <-time.After(delay):
			}
		}

		resp, err := c.doRequest(ctx, body)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil || !IsRetryable(err) {
				return nil, WrapError(op, err)
			}
			logger.Debug("request failed, will retry", "error", err, "attempt", attempt)
			continue
		}

		if resp.Error != nil {
			logger.Debug("RPC error", "code", resp.Error.Code, "message", resp.Error.Message)
			return resp, FromRPCError(op, resp.Error)
		}

		logger.Debug("request successful", "request_id", resp.ID)
		return resp, nil
	}

	return nil, WrapError(op, fmt.Errorf("all retries exhausted: %w", lastErr))
}

// doRequest performs a single HTTP request and parses the response.
func (c *Client) doRequest(ctx context.Context, body []byte) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.config.Token != "" {
		httpReq.Header.Set("Authorization", c.config.Token)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &transportError{err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		// KBase servers send RPC errors with a 500 status.
		var rpcResp Response
		if json.Unmarshal(respBody, &rpcResp) == nil && rpcResp.Error != nil {
			return &rpcResp, nil
		}
		return nil, &HTTPError{StatusCode: httpResp.StatusCode, Body: string(respBody)}
	}

	var rpcResp Response
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	return &rpcResp, nil
}

// UnmarshalResult extracts the first element of a KBase result array into T.
func UnmarshalResult[T any](resp *Response) (T, error) {
	var result T
	if resp == nil || resp.Result == nil {
		return result, ErrEmptyResult
	}
	var results []json.RawMessage
	if err := json.Unmarshal(resp.Result, &results); err != nil {
		return result, fmt.Errorf("unmarshaling result: %w", err)
	}
	if len(results) == 0 {
		return result, ErrEmptyResult
	}
	if err := json.Unmarshal(results[0], &result); err != nil {
		return result, fmt.Errorf("unmarshaling result: %w", err)
	}
	return result, nil
}
