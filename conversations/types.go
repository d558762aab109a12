package conversations

import (
	"time"

	"github.com/s0up4200/helpscout/client"
	"github.com/s0up4200/helpscout/mailboxes"
)

// Status is the state of a conversation
type Status string

const (
	StatusActive  Status = "active"
	StatusPending Status = "pending"
	StatusClosed  Status = "closed"
	StatusSpam    Status = "spam"
)

// Type is the channel a conversation arrived through
type Type string

const (
	TypeEmail Type = "email"
	TypeChat  Type = "chat"
	TypePhone Type = "phone"
)

// PersonType distinguishes who a Person refers to
type PersonType string

const (
	PersonUser     PersonType = "user"
	PersonCustomer PersonType = "customer"
	PersonTeam     PersonType = "team"
)

// Person is the short user or customer form embedded in conversations
type Person struct {
	ID        int        `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email,omitempty"`
	Emails    []string   `json:"emails,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Type      PersonType `json:"type,omitempty"`
	PhotoURL  string     `json:"photoUrl,omitempty"`
}

// FullName joins the first and last name
func (p Person) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// Conversation is a Help Scout conversation summary
type Conversation struct {
	ID          int                   `json:"id"`
	Number      int                   `json:"number"`
	Type        Type                  `json:"type"`
	FolderID    int                   `json:"folderId"`
	IsDraft     bool                  `json:"isDraft"`
	Status      Status                `json:"status"`
	Owner       *Person               `json:"owner"`
	Mailbox     *mailboxes.MailboxRef `json:"mailbox"`
	Customer    *Person               `json:"customer"`
	ThreadCount int                   `json:"threadCount"`
	Subject     string                `json:"subject"`
	Preview     string                `json:"preview"`
	CreatedBy   *Person               `json:"createdBy"`
	CreatedAt   time.Time             `json:"createdAt"`
	ModifiedAt  *time.Time            `json:"modifiedAt"`
	ClosedAt    *time.Time            `json:"closedAt"`
	CC          []string              `json:"cc"`
	BCC         []string              `json:"bcc"`
	Tags        []string              `json:"tags"`
}

// ListParams filters conversation listings
type ListParams struct {
	Page          int         `url:"page,omitempty"`
	Status        Status      `url:"status,omitempty"`
	ModifiedSince client.Time `url:"modifiedSince,omitempty"`
	Tag           string      `url:"tag,omitempty"`
}

// WithPage returns a copy of p for the given page
func (p ListParams) WithPage(page int) ListParams {
	p.Page = page
	return p
}

// WithStatus returns a copy of p restricted to status
func (p ListParams) WithStatus(status Status) ListParams {
	p.Status = status
	return p
}

// WithModifiedSince returns a copy of p restricted to conversations modified after t
func (p ListParams) WithModifiedSince(t time.Time) ListParams {
	p.ModifiedSince = client.NewTime(t)
	return p
}

// WithTag returns a copy of p restricted to a tag
func (p ListParams) WithTag(tag string) ListParams {
	p.Tag = tag
	return p
}
