// Package client - probe.go implements the two probe operations and
// their shared request plumbing.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// Params is a flat mapping of query parameter names to typed values.
// Values are one of bool, int64, float64, or string; no nesting, no
// arrays.
type Params map[string]any

// PingResult is the structured envelope returned by Ping. It is always
// produced, whether or not the probe succeeded.
type PingResult struct {
	// Status is the HTTP status code, or null when no response arrived.
	Status *int `json:"status"`

	// Headers holds the response headers (first value per name). Empty
	// when no response arrived.
	Headers map[string]string `json:"headers"`

	// Success reports whether the probe reached the endpoint and got a
	// 2xx response.
	Success bool `json:"success"`

	// Message is a human-readable diagnostic naming the target URL.
	Message string `json:"message"`
}

// Ping issues an unauthenticated GET against {base}/get as a
// connectivity check.
//
// Ping never returns an error: any transport failure or non-2xx status
// is absorbed into the returned envelope. This is a deliberate contract
// distinct from GetWithParams — a health check should always yield a
// structured diagnostic.
//
// On a 2xx response the envelope carries the status code, the response
// headers, and a success message. On failure it carries the status code
// if a response arrived (null otherwise), any response headers, and a
// message naming the target URL and the cause.
func (c *Client) Ping(ctx context.Context) PingResult {
	url := c.baseURL + probePath
	c.log.Debug("pinging endpoint", zap.String("url", url))

	resp, err := c.rc.R().SetContext(ctx).Get(probePath)
	if err != nil {
		c.log.Warn("ping failed", zap.String("url", url), zap.Error(err))
		return PingResult{
			Headers: map[string]string{},
			Success: false,
			Message: fmt.Sprintf("Connection to %s failed: %v", url, err),
		}
	}

	status := resp.StatusCode()
	headers := flattenHeader(resp.Header())

	if !resp.IsSuccess() {
		c.log.Warn("ping returned non-2xx status",
			zap.String("url", url), zap.Int("status", status))
		return PingResult{
			Status:  &status,
			Headers: headers,
			Success: false,
			Message: fmt.Sprintf("Connection to %s failed: %s", url, statusCause(status, resp.Body())),
		}
	}

	c.log.Info("ping succeeded", zap.String("url", url), zap.Int("status", status))
	return PingResult{
		Status:  &status,
		Headers: headers,
		Success: true,
		Message: fmt.Sprintf("Successfully connected to %s", url),
	}
}

// GetWithParams issues a GET against {base}/get with the given query
// parameters and returns the decoded JSON response body unchanged.
//
// Unlike Ping, failures propagate: a transport error, a non-2xx status,
// or an undecodable body all produce an error whose message names the
// target URL and the cause. Pass nil or an empty map to omit the query
// string entirely.
func (c *Client) GetWithParams(ctx context.Context, params Params) (any, error) {
	url := c.baseURL + probePath
	c.log.Debug("issuing GET", zap.String("url", url), zap.Int("params", len(params)))

	req := c.rc.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(renderParams(params))
	}

	resp, err := req.Get(probePath)
	if err != nil {
		return nil, fmt.Errorf("GET request to %s failed: %w", url, err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("GET request to %s failed: %s", url, statusCause(resp.StatusCode(), resp.Body()))
	}

	dec := json.NewDecoder(bytes.NewReader(resp.Body()))
	dec.UseNumber()
	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("GET request to %s failed: invalid JSON response: %w", url, err)
	}

	c.log.Info("GET succeeded", zap.String("url", url), zap.Int("status", resp.StatusCode()))
	return body, nil
}

// renderParams converts typed parameter values to their query-string
// form. Booleans render as "true"/"false", integers in base 10, floats
// in their shortest exact decimal form.
func renderParams(params Params) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		switch val := v.(type) {
		case bool:
			out[k] = strconv.FormatBool(val)
		case int64:
			out[k] = strconv.FormatInt(val, 10)
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case string:
			out[k] = val
		default:
			out[k] = fmt.Sprintf("%v", val)
		}
	}
	return out
}

// flattenHeader keeps the first value of each response header.
func flattenHeader(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name := range h {
		out[name] = h.Get(name)
	}
	return out
}

// statusCause describes a non-2xx response. When the body carries a
// JSON error object ({"error": "..."}), its message is used; otherwise
// the status code alone.
func statusCause(status int, body []byte) string {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return fmt.Sprintf("server error: %s (status %d)", errResp.Error, status)
	}
	return fmt.Sprintf("request failed with status %d", status)
}
