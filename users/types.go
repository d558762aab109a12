package users

import "time"

// UserType distinguishes individual users from teams
type UserType string

const (
	TypeUser UserType = "user"
	TypeTeam UserType = "team"
)

// User is a Help Scout user. Teams share the same shape.
type User struct {
	ID         int        `json:"id"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Timezone   string     `json:"timezone"`
	PhotoURL   string     `json:"photoUrl,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	ModifiedAt *time.Time `json:"modifiedAt,omitempty"`
	Type       UserType   `json:"type"`
}

// Name returns the display name of the user
func (u User) Name() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsTeam reports whether the record describes a team
func (u User) IsTeam() bool {
	return u.Type == TypeTeam
}

// ListParams filters user listings
type ListParams struct {
	Page int      `url:"page,omitempty"`
	Type UserType `url:"type,omitempty"`
}

// WithPage returns a copy of p for the given page
func (p ListParams) WithPage(page int) ListParams {
	p.Page = page
	return p
}

// WithType returns a copy of p restricted to one user type
func (p ListParams) WithType(t UserType) ListParams {
	p.Type = t
	return p
}
