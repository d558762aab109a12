// Package users wraps the Help Scout user endpoints.
package users

import (
	"context"
	"fmt"

	"github.com/s0up4200/helpscout/client"
)

// Service provides access to users
type Service struct {
	api client.API
}

// New creates a user service on top of api
func New(api client.API) *Service {
	return &Service{api: api}
}

// List returns one page of users
func (s *Service) List(ctx context.Context, params ListParams) (client.Collection[User], error) {
	return client.Decode[client.Collection[User]](s.api.Get(ctx, "users.json", params))
}

// ListAll returns every user matching params. The page field is ignored.
func (s *Service) ListAll(ctx context.Context, params ListParams) ([]User, error) {
	return client.FetchAll(ctx, func(ctx context.Context, page int) (client.Collection[User], error) {
		return s.List(ctx, params.WithPage(page))
	}, client.Concurrency(s.api))
}

// Get returns a single user
func (s *Service) Get(ctx context.Context, id int) (client.Item[User], error) {
	return client.Decode[client.Item[User]](s.api.Get(ctx, fmt.Sprintf("users/%d.json", id), nil))
}

// Me returns the user that owns the API key
func (s *Service) Me(ctx context.Context) (client.Item[User], error) {
	return client.Decode[client.Item[User]](s.api.Get(ctx, "users/me.json", nil))
}

// ListByMailbox returns one page of users with access to a mailbox
func (s *Service) ListByMailbox(ctx context.Context, mailboxID int, params ListParams) (client.Collection[User], error) {
	path := fmt.Sprintf("mailboxes/%d/users.json", mailboxID)
	return client.Decode[client.Collection[User]](s.api.Get(ctx, path, params))
}
