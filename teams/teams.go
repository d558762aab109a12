// Package teams wraps the Help Scout team endpoints. Teams and their
// members are returned as users.User values.
package teams

import (
	"context"
	"fmt"

	"github.com/s0up4200/helpscout/client"
	"github.com/s0up4200/helpscout/users"
)

// ListParams pages team listings
type ListParams struct {
	Page int `url:"page,omitempty"`
}

// Service provides access to teams
type Service struct {
	api client.API
}

// New creates a team service on top of api
func New(api client.API) *Service {
	return &Service{api: api}
}

// List returns one page of teams
func (s *Service) List(ctx context.Context, params ListParams) (client.Collection[users.User], error) {
	return client.Decode[client.Collection[users.User]](s.api.Get(ctx, "teams.json", params))
}

// ListAll returns every team
func (s *Service) ListAll(ctx context.Context) ([]users.User, error) {
	return client.FetchAll(ctx, func(ctx context.Context, page int) (client.Collection[users.User], error) {
		return s.List(ctx, ListParams{Page: page})
	}, client.Concurrency(s.api))
}

// Get returns a single team
func (s *Service) Get(ctx context.Context, id int) (client.Item[users.User], error) {
	return client.Decode[client.Item[users.User]](s.api.Get(ctx, fmt.Sprintf("teams/%d.json", id), nil))
}

// Members returns one page of the users in a team
func (s *Service) Members(ctx context.Context, id int, params ListParams) (client.Collection[users.User], error) {
	path := fmt.Sprintf("teams/%d/members.json", id)
	return client.Decode[client.Collection[users.User]](s.api.Get(ctx, path, params))
}

// AllMembers returns every user in a team
func (s *Service) AllMembers(ctx context.Context, id int) ([]users.User, error) {
	return client.FetchAll(ctx, func(ctx context.Context, page int) (client.Collection[users.User], error) {
		return s.Members(ctx, id, ListParams{Page: page})
	}, client.Concurrency(s.api))
}
