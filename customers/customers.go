// Package customers wraps the Help Scout customer endpoints.
//
// Listing accepts ListParams, built fluently from the zero value:
//
//	params := customers.ListParams{}.WithEmail("ada@example.com")
//	page, err := svc.List(ctx, params)
//
// Creating and updating take an immutable Profile:
//
//	p := customers.NewProfile("Ada", "Lovelace", customers.NewEmail("ada@example.com")).
//		WithOrganization("Analytical Engines")
//	err := svc.Create(ctx, p)
package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/s0up4200/helpscout/client"
)

// ErrInvalidProfile is returned before any request is made when a profile
// lacks the fields the API requires
var ErrInvalidProfile = errors.New("invalid customer profile")

// Service provides access to customers
type Service struct {
	api client.API
}

// New creates a customer service on top of api
func New(api client.API) *Service {
	return &Service{api: api}
}

// List returns one page of customers matching params
func (s *Service) List(ctx context.Context, params ListParams) (client.Collection[Customer], error) {
	return client.Decode[client.Collection[Customer]](s.api.Get(ctx, "customers.json", params))
}

// ListByMailbox returns one page of customers who contacted a mailbox
func (s *Service) ListByMailbox(ctx context.Context, mailboxID int, params ListParams) (client.Collection[Customer], error) {
	path := fmt.Sprintf("mailboxes/%d/customers.json", mailboxID)
	return client.Decode[client.Collection[Customer]](s.api.Get(ctx, path, params))
}

// ListAll returns every customer matching params. The page field is ignored.
func (s *Service) ListAll(ctx context.Context, params ListParams) ([]Customer, error) {
	return client.FetchAll(ctx, func(ctx context.Context, page int) (client.Collection[Customer], error) {
		return s.List(ctx, params.WithPage(page))
	}, client.Concurrency(s.api))
}

// Get returns a single customer
func (s *Service) Get(ctx context.Context, id int) (client.Item[Customer], error) {
	return client.Decode[client.Item[Customer]](s.api.Get(ctx, fmt.Sprintf("customers/%d.json", id), nil))
}

// Create adds a new customer
func (s *Service) Create(ctx context.Context, profile Profile) error {
	if err := profile.validate(); err != nil {
		return err
	}

	body, err := client.JSONBody(profile)
	if err != nil {
		return err
	}

	if _, err := s.api.Post(ctx, "customers.json", nil, body); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// Update replaces the writable fields of an existing customer
func (s *Service) Update(ctx context.Context, id int, profile Profile) error {
	if err := profile.validate(); err != nil {
		return err
	}

	body, err := client.JSONBody(profile)
	if err != nil {
		return err
	}

	if _, err := s.api.Put(ctx, fmt.Sprintf("customers/%d.json", id), nil, body); err != nil {
		return fmt.Errorf("failed to update customer %d: %w", id, err)
	}
	return nil
}

func (p Profile) validate() error {
	if p.FirstName == "" && p.LastName == "" {
		return fmt.Errorf("%w: first or last name required", ErrInvalidProfile)
	}
	for _, e := range p.Emails {
		if e.Value == "" {
			return fmt.Errorf("%w: empty email address", ErrInvalidProfile)
		}
	}
	return nil
}
