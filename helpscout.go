// Package helpscout is a client for the Help Scout v1 API.
//
// New bundles every resource service on top of one request pipeline:
//
//	hs, err := helpscout.New(apiKey, logger)
//	if err != nil {
//		return err
//	}
//	boxes, err := hs.Mailboxes.ListAll(ctx)
//
// The resource packages can also be used on their own with any
// client.API implementation.
package helpscout

import (
	"github.com/rs/zerolog"

	"github.com/s0up4200/helpscout/client"
	"github.com/s0up4200/helpscout/config"
	"github.com/s0up4200/helpscout/conversations"
	"github.com/s0up4200/helpscout/customers"
	"github.com/s0up4200/helpscout/mailboxes"
	"github.com/s0up4200/helpscout/reports"
	"github.com/s0up4200/helpscout/tags"
	"github.com/s0up4200/helpscout/teams"
	"github.com/s0up4200/helpscout/users"
)

// Client groups the resource services around a shared pipeline
type Client struct {
	*client.Client

	Conversations *conversations.Service
	Customers     *customers.Service
	Mailboxes     *mailboxes.Service
	Reports       *reports.Service
	Tags          *tags.Service
	Teams         *teams.Service
	Users         *users.Service
}

// New creates a client for apiKey
func New(apiKey string, logger zerolog.Logger, opts ...client.Option) (*Client, error) {
	c, err := client.New(apiKey, logger, opts...)
	if err != nil {
		return nil, err
	}
	return Wrap(c), nil
}

// NewFromConfig creates a client from loaded configuration
func NewFromConfig(cfg *config.Config, logger zerolog.Logger) (*Client, error) {
	c, err := cfg.HelpScout.NewClient(logger)
	if err != nil {
		return nil, err
	}
	return Wrap(c), nil
}

// Wrap attaches the resource services to an existing pipeline
func Wrap(c *client.Client) *Client {
	return &Client{
		Client:        c,
		Conversations: conversations.New(c),
		Customers:     customers.New(c),
		Mailboxes:     mailboxes.New(c),
		Reports:       reports.New(c),
		Tags:          tags.New(c),
		Teams:         teams.New(c),
		Users:         users.New(c),
	}
}
