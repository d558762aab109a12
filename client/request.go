package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Get performs a GET against path with the given query parameters
func (c *Client) Get(ctx context.Context, path string, params any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, params, nil)
}

// Post performs a POST with a pre-serialized JSON body
func (c *Client) Post(ctx context.Context, path string, params any, body []byte) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, params, body)
}

// Put performs a PUT with a pre-serialized JSON body
func (c *Client) Put(ctx context.Context, path string, params any, body []byte) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, params, body)
}

// buildURL joins the base URL, path and encoded query
func (c *Client) buildURL(path string, params any) (string, error) {
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return "", fmt.Errorf("%w: path is required", ErrRequestURL)
	}

	u, err := url.Parse(c.baseURL + "/" + path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestURL, err)
	}

	values, err := encodeQuery(params)
	if err != nil {
		return "", err
	}
	if len(values) > 0 {
		u.RawQuery = values.Encode()
	}

	return u.String(), nil
}

// do runs one logical call, including any 503 retries
func (c *Client) do(ctx context.Context, method, path string, params any, body []byte) (json.RawMessage, error) {
	policy := c.RetryPolicy()

	endpoint, err := c.buildURL(path, params)
	if err != nil {
		return nil, err
	}

	var rawBody any
	if body != nil {
		rawBody = body
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, endpoint, rawBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	c.authorize(req.Request)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.retrier(policy).Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		if errors.Is(err, ErrIO) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("Help Scout API request")

	raw, err := classify(resp)
	if errors.Is(err, ErrServiceUnavailable) {
		c.logger.Warn().
			Str("method", method).
			Str("path", path).
			Int("attempts", policy.attempts()).
			Msg("Help Scout unavailable after retries")
	}
	return raw, err
}

func (c *Client) authorize(req *http.Request) {
	if c.keyHeader {
		req.Header.Set(APIKeyHeader, c.apiKey)
	} else {
		req.SetBasicAuth(c.apiKey, basicAuthPassword)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
}

// classify maps a final response to a result. A JSON body is keyed on the
// status code; a non-JSON body is only acceptable on 200/201.
func classify(resp *http.Response) (json.RawMessage, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	if !json.Valid(body) {
		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated:
			return NoContent, nil
		case http.StatusServiceUnavailable:
			return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body), kind: ErrServiceUnavailable}
		default:
			return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body), kind: ErrInvalidServerResponse}
		}
	}

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		return json.RawMessage(body), nil
	}

	kind, ok := statusErrors[resp.StatusCode]
	if !ok {
		kind = ErrUnexpectedStatus
	}

	var status Status
	if err := json.Unmarshal(body, &status); err != nil {
		if ok {
			return nil, fmt.Errorf("%w: status envelope: %w", ErrJSONParse, err)
		}
		status = Status{}
	}

	return nil, &APIError{StatusCode: resp.StatusCode, Status: status, Body: string(body), kind: kind}
}
