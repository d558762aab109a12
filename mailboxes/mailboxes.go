// Package mailboxes wraps the Help Scout mailbox endpoints.
package mailboxes

import (
	"context"
	"fmt"

	"github.com/s0up4200/helpscout/client"
)

// Service provides access to mailboxes and their folders
type Service struct {
	api client.API
}

// New creates a mailbox service on top of api
func New(api client.API) *Service {
	return &Service{api: api}
}

// List returns one page of mailboxes
func (s *Service) List(ctx context.Context, params ListParams) (client.Collection[Mailbox], error) {
	return client.Decode[client.Collection[Mailbox]](s.api.Get(ctx, "mailboxes.json", params))
}

// ListAll returns every mailbox across all pages
func (s *Service) ListAll(ctx context.Context) ([]Mailbox, error) {
	return client.FetchAll(ctx, func(ctx context.Context, page int) (client.Collection[Mailbox], error) {
		return s.List(ctx, ListParams{Page: page})
	}, client.Concurrency(s.api))
}

// Get returns a single mailbox
func (s *Service) Get(ctx context.Context, id int) (client.Item[Mailbox], error) {
	return client.Decode[client.Item[Mailbox]](s.api.Get(ctx, fmt.Sprintf("mailboxes/%d.json", id), nil))
}

// Folders returns the folders of a mailbox
func (s *Service) Folders(ctx context.Context, mailboxID int) (client.Collection[Folder], error) {
	return client.Decode[client.Collection[Folder]](s.api.Get(ctx, fmt.Sprintf("mailboxes/%d/folders.json", mailboxID), nil))
}
