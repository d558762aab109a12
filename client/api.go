package client

import (
	"context"
	"encoding/json"
)

// API is the request surface resource packages are written against
type API interface {
	// Get performs a GET and returns the raw JSON body
	Get(ctx context.Context, path string, params any) (json.RawMessage, error)

	// Post sends a pre-serialized JSON body
	Post(ctx context.Context, path string, params any, body []byte) (json.RawMessage, error)

	// Put sends a pre-serialized JSON body
	Put(ctx context.Context, path string, params any, body []byte) (json.RawMessage, error)
}

var _ API = (*Client)(nil)
