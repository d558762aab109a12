package reports

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/s0up4200/helpscout/client"
	"github.com/s0up4200/helpscout/conversations"
)

// ErrInvalidRange is returned before any request is made when a report
// time range is missing or inverted
var ErrInvalidRange = errors.New("invalid report time range")

// ViewBy is the interval statistics are grouped by
type ViewBy string

const (
	ViewByDay   ViewBy = "day"
	ViewByWeek  ViewBy = "week"
	ViewByMonth ViewBy = "month"
)

// Params holds the query shared by every report. Build it with NewParams;
// the With methods return modified copies.
type Params struct {
	Start client.Time `url:"start"`
	End   client.Time `url:"end"`

	Mailboxes string `url:"mailboxes,omitempty"`
	Tags      string `url:"tags,omitempty"`
	Types     string `url:"types,omitempty"`
	Folders   string `url:"folders,omitempty"`

	PreviousStart client.Time `url:"previousStart,omitempty"`
	PreviousEnd   client.Time `url:"previousEnd,omitempty"`

	// Only some reports read these
	Page        int    `url:"page,omitempty"`
	Rows        int    `url:"rows,omitempty"`
	ViewBy      ViewBy `url:"viewBy,omitempty"`
	OfficeHours *bool  `url:"officeHours,omitempty,int"`
	User        int    `url:"user,omitempty"`
}

// NewParams creates report parameters covering [start, end]
func NewParams(start, end time.Time) Params {
	return Params{Start: client.NewTime(start), End: client.NewTime(end)}
}

// WithMailboxes returns a copy of p restricted to the given mailboxes
func (p Params) WithMailboxes(ids ...int) Params {
	p.Mailboxes = joinInts(ids)
	return p
}

// WithTags returns a copy of p restricted to the given tags
func (p Params) WithTags(ids ...int) Params {
	p.Tags = joinInts(ids)
	return p
}

// WithTypes returns a copy of p restricted to the given conversation types
func (p Params) WithTypes(types ...conversations.Type) Params {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	p.Types = strings.Join(parts, ",")
	return p
}

// WithFolders returns a copy of p restricted to the given folders
func (p Params) WithFolders(ids ...int) Params {
	p.Folders = joinInts(ids)
	return p
}

// WithPrevious returns a copy of p compared against a second range
func (p Params) WithPrevious(start, end time.Time) Params {
	p.PreviousStart = client.NewTime(start)
	p.PreviousEnd = client.NewTime(end)
	return p
}

func (p Params) WithPage(page int) Params {
	p.Page = page
	return p
}

// WithRows sets the drill down page size. The API defaults to 10 and caps at 50.
func (p Params) WithRows(rows int) Params {
	p.Rows = rows
	return p
}

func (p Params) WithViewBy(v ViewBy) Params {
	p.ViewBy = v
	return p
}

// WithOfficeHours returns a copy of p that asks for statistics inside or
// outside office hours
func (p Params) WithOfficeHours(enabled bool) Params {
	p.OfficeHours = &enabled
	return p
}

func (p Params) validate() error {
	if p.Start.IsZero() || p.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidRange)
	}
	if p.End.Before(p.Start.Time) {
		return fmt.Errorf("%w: end %s is before start %s", ErrInvalidRange,
			p.End.UTC().Format(client.TimeFormat), p.Start.UTC().Format(client.TimeFormat))
	}
	if p.PreviousStart.IsZero() != p.PreviousEnd.IsZero() {
		return fmt.Errorf("%w: previous range needs both start and end", ErrInvalidRange)
	}
	if !p.PreviousStart.IsZero() && p.PreviousEnd.Before(p.PreviousStart.Time) {
		return fmt.Errorf("%w: previous end is before previous start", ErrInvalidRange)
	}
	return nil
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
