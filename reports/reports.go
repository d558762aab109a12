// Package reports wraps the Help Scout conversation, productivity and
// user reports.
//
// Every report takes the same Params. Start and end are required:
//
//	p := reports.NewParams(start, end).
//		WithMailboxes(1234).
//		WithPrevious(prevStart, prevEnd)
//	report, err := svc.ConversationsOverall(ctx, p)
//
// Reports are not wrapped in the item envelope, so results are decoded
// directly into the report types.
package reports

import (
	"context"

	"github.com/s0up4200/helpscout/client"
)

// Service provides access to reports
type Service struct {
	api client.API
}

// New creates a report service on top of api
func New(api client.API) *Service {
	return &Service{api: api}
}

// ConversationsOverall returns the overall conversations report
func (s *Service) ConversationsOverall(ctx context.Context, p Params) (ConversationsReport, error) {
	return run[ConversationsReport](ctx, s.api, "reports/conversations.json", p)
}

// BusyTimes returns conversation counts per weekday and hour
func (s *Service) BusyTimes(ctx context.Context, p Params) ([]BusyTimeStatistics, error) {
	return run[[]BusyTimeStatistics](ctx, s.api, "reports/conversations/busy-times.json", p)
}

// NewConversations returns new conversation counts grouped by p.ViewBy
func (s *Service) NewConversations(ctx context.Context, p Params) (NewConversationsReport, error) {
	return run[NewConversationsReport](ctx, s.api, "reports/conversations/new.json", p)
}

// ReceivedMessages returns received message counts grouped by p.ViewBy
func (s *Service) ReceivedMessages(ctx context.Context, p Params) (ReceivedMessagesReport, error) {
	return run[ReceivedMessagesReport](ctx, s.api, "reports/conversations/received-messages.json", p)
}

// DrillDown returns one page of the conversations behind a report. Use
// p.WithPage and p.WithRows to page.
func (s *Service) DrillDown(ctx context.Context, p Params) (DrillDownReport, error) {
	return run[DrillDownReport](ctx, s.api, "reports/conversations/drilldown.json", p)
}

// ProductivityOverall returns the overall productivity report
func (s *Service) ProductivityOverall(ctx context.Context, p Params) (ProductivityReport, error) {
	return run[ProductivityReport](ctx, s.api, "reports/productivity.json", p)
}

// UserOverall returns the overall report for one user. Any user already set
// on p is replaced.
func (s *Service) UserOverall(ctx context.Context, userID int, p Params) (UserReport, error) {
	p.User = userID
	return run[UserReport](ctx, s.api, "reports/user.json", p)
}

func run[T any](ctx context.Context, api client.API, path string, p Params) (T, error) {
	if err := p.validate(); err != nil {
		var zero T
		return zero, err
	}
	return client.Decode[T](api.Get(ctx, path, p))
}
