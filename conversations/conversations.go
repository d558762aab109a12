// Package conversations wraps the Help Scout conversation endpoints.
package conversations

import (
	"context"
	"fmt"

	"github.com/s0up4200/helpscout/client"
)

// Service provides access to conversations
type Service struct {
	api client.API
}

// New creates a conversation service on top of api
func New(api client.API) *Service {
	return &Service{api: api}
}

// List returns one page of conversations in a mailbox
func (s *Service) List(ctx context.Context, mailboxID int, params ListParams) (client.Collection[Conversation], error) {
	path := fmt.Sprintf("mailboxes/%d/conversations.json", mailboxID)
	return client.Decode[client.Collection[Conversation]](s.api.Get(ctx, path, params))
}

// ListAll returns every conversation in a mailbox matching params. The page
// field of params is ignored.
func (s *Service) ListAll(ctx context.Context, mailboxID int, params ListParams) ([]Conversation, error) {
	return client.FetchAll(ctx, func(ctx context.Context, page int) (client.Collection[Conversation], error) {
		return s.List(ctx, mailboxID, params.WithPage(page))
	}, client.Concurrency(s.api))
}

// Get returns a single conversation
func (s *Service) Get(ctx context.Context, id int) (client.Item[Conversation], error) {
	return client.Decode[client.Item[Conversation]](s.api.Get(ctx, fmt.Sprintf("conversations/%d.json", id), nil))
}
