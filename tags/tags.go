// Package tags wraps the Help Scout tag endpoints.
package tags

import (
	"context"
	"time"

	"github.com/s0up4200/helpscout/client"
)

// Tag is a conversation tag with its usage count
type Tag struct {
	ID         int        `json:"id"`
	Tag        string     `json:"tag"`
	Slug       string     `json:"slug"`
	Color      string     `json:"color"`
	Count      int        `json:"count"`
	CreatedAt  time.Time  `json:"createdAt"`
	ModifiedAt *time.Time `json:"modifiedAt,omitempty"`
}

// ListParams pages tag listings
type ListParams struct {
	Page int `url:"page,omitempty"`
}

// Service provides access to tags
type Service struct {
	api client.API
}

// New creates a tag service on top of api
func New(api client.API) *Service {
	return &Service{api: api}
}

// List returns one page of tags
func (s *Service) List(ctx context.Context, params ListParams) (client.Collection[Tag], error) {
	return client.Decode[client.Collection[Tag]](s.api.Get(ctx, "tags.json", params))
}

// ListAll returns every tag
func (s *Service) ListAll(ctx context.Context) ([]Tag, error) {
	return client.FetchAll(ctx, func(ctx context.Context, page int) (client.Collection[Tag], error) {
		return s.List(ctx, ListParams{Page: page})
	}, client.Concurrency(s.api))
}
