package client

import (
	"encoding/json"
	"fmt"
)

// NoContent is returned for a successful response whose body is not JSON
var NoContent = json.RawMessage("null")

// Status is the {code, error} sub-shape present in every response body
type Status struct {
	Code  *int   `json:"code"`
	Error string `json:"error"`
}

// Collection is the envelope for paginated list endpoints
type Collection[T any] struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Count int `json:"count"`
	Items []T `json:"items"`
}

// HasNext reports whether another page follows this one
func (c Collection[T]) HasNext() bool {
	return c.Page < c.Pages
}

// Item is the envelope for single resource endpoints
type Item[T any] struct {
	Item T `json:"item"`
}

// Decode unmarshals a pipeline result into T. It is shaped to take the
// results of Get, Post and Put directly:
//
//	mailbox, err := client.Decode[client.Item[Mailbox]](api.Get(ctx, path, nil))
func Decode[T any](raw json.RawMessage, err error) (T, error) {
	var v T
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("%w: %w", ErrJSONParse, err)
	}
	return v, nil
}

// JSONBody serializes a request body
func JSONBody(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSONParse, err)
	}
	return b, nil
}
