package customers

import (
	"time"

	"github.com/s0up4200/helpscout/client"
)

// SocialProfileType is the network a social profile belongs to
type SocialProfileType string

const (
	SocialTwitter    SocialProfileType = "twitter"
	SocialFacebook   SocialProfileType = "facebook"
	SocialLinkedIn   SocialProfileType = "linkedin"
	SocialAboutMe    SocialProfileType = "aboutme"
	SocialGoogle     SocialProfileType = "google"
	SocialGooglePlus SocialProfileType = "googleplus"
	SocialTungleMe   SocialProfileType = "tungleme"
	SocialQuora      SocialProfileType = "quora"
	SocialFoursquare SocialProfileType = "foursquare"
	SocialYouTube    SocialProfileType = "youtube"
	SocialFlickr     SocialProfileType = "flickr"
	SocialOther      SocialProfileType = "other"
)

// EmailLocation classifies an email address
type EmailLocation string

const (
	EmailHome  EmailLocation = "home"
	EmailWork  EmailLocation = "work"
	EmailOther EmailLocation = "other"
)

// ChatType is the chat service a handle belongs to
type ChatType string

const (
	ChatAIM   ChatType = "aim"
	ChatGTalk ChatType = "gtalk"
	ChatICQ   ChatType = "icq"
	ChatXMPP  ChatType = "xmpp"
	ChatMSN   ChatType = "msn"
	ChatSkype ChatType = "skype"
	ChatYahoo ChatType = "yahoo"
	ChatQQ    ChatType = "qq"
	ChatOther ChatType = "other"
)

// PhoneLocation classifies a phone number
type PhoneLocation string

const (
	PhoneHome   PhoneLocation = "home"
	PhoneWork   PhoneLocation = "work"
	PhoneMobile PhoneLocation = "mobile"
	PhoneFax    PhoneLocation = "fax"
	PhonePager  PhoneLocation = "pager"
	PhoneOther  PhoneLocation = "other"
)

// PhotoType is where a customer photo was sourced from
type PhotoType string

const (
	PhotoUnknown       PhotoType = "unknown"
	PhotoGravatar      PhotoType = "gravatar"
	PhotoTwitter       PhotoType = "twitter"
	PhotoFacebook      PhotoType = "facebook"
	PhotoGoogleProfile PhotoType = "googleprofile"
	PhotoGooglePlus    PhotoType = "googleplus"
	PhotoLinkedIn      PhotoType = "linkedin"
)

// Gender of a customer as reported by the API
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// Customer is a Help Scout customer record
type Customer struct {
	ID           int        `json:"id"`
	FirstName    string     `json:"firstName,omitempty"`
	LastName     string     `json:"lastName,omitempty"`
	FullName     string     `json:"fullName,omitempty"`
	PhotoURL     string     `json:"photoUrl,omitempty"`
	PhotoType    PhotoType  `json:"photoType,omitempty"`
	Gender       Gender     `json:"gender"`
	Age          string     `json:"age,omitempty"`
	Organization string     `json:"organization,omitempty"`
	JobTitle     string     `json:"jobTitle,omitempty"`
	Location     string     `json:"location,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	ModifiedAt   *time.Time `json:"modifiedAt,omitempty"`

	Background     string          `json:"background,omitempty"`
	Address        *Address        `json:"address,omitempty"`
	SocialProfiles []SocialProfile `json:"socialProfiles,omitempty"`
	Emails         []Email         `json:"emails,omitempty"`
	// Single customer responses always carry an empty list here
	Phones   []Phone   `json:"phones,omitempty"`
	Chats    []Chat    `json:"chats,omitempty"`
	Websites []Website `json:"websites,omitempty"`
}

// Address is a customer's postal address
type Address struct {
	ID         int        `json:"id,omitempty"`
	City       string     `json:"city"`
	State      string     `json:"state"`
	Country    string     `json:"country"`
	PostalCode string     `json:"postalCode"`
	Lines      []string   `json:"lines"`
	CreatedAt  time.Time  `json:"createdAt"`
	ModifiedAt *time.Time `json:"modifiedAt,omitempty"`
}

// NewAddress builds an address for create and update requests
func NewAddress(city, state, country, postalCode string, lines []string, createdAt time.Time) Address {
	return Address{
		City:       city,
		State:      state,
		Country:    country,
		PostalCode: postalCode,
		Lines:      append([]string(nil), lines...),
		CreatedAt:  createdAt.UTC().Truncate(time.Second),
	}
}

// SocialProfile is a customer's social network handle
type SocialProfile struct {
	ID    int               `json:"id,omitempty"`
	Value string            `json:"value"`
	Type  SocialProfileType `json:"type"`
}

// Email is a customer's email address
type Email struct {
	ID       int           `json:"id,omitempty"`
	Value    string        `json:"value"`
	Location EmailLocation `json:"location"`
}

// NewEmail builds a work email, the location the API assumes by default
func NewEmail(address string) Email {
	return Email{Value: address, Location: EmailWork}
}

// Phone is a customer's phone number
type Phone struct {
	ID       int           `json:"id,omitempty"`
	Value    string        `json:"value"`
	Location PhoneLocation `json:"location"`
}

// Chat is a customer's chat handle
type Chat struct {
	ID    int      `json:"id,omitempty"`
	Value string   `json:"value"`
	Type  ChatType `json:"type"`
}

// Website is a customer's website
type Website struct {
	ID    int    `json:"id,omitempty"`
	Value string `json:"value"`
}

// ListParams filters customer listings
type ListParams struct {
	FirstName     string      `url:"firstName,omitempty"`
	LastName      string      `url:"lastName,omitempty"`
	Email         string      `url:"email,omitempty"`
	ModifiedSince client.Time `url:"modifiedSince,omitempty"`
	Page          int         `url:"page,omitempty"`
}

// WithFirstName returns a copy of p matching a first name
func (p ListParams) WithFirstName(name string) ListParams {
	p.FirstName = name
	return p
}

// WithLastName returns a copy of p matching a last name
func (p ListParams) WithLastName(name string) ListParams {
	p.LastName = name
	return p
}

// WithEmail returns a copy of p matching an email address
func (p ListParams) WithEmail(email string) ListParams {
	p.Email = email
	return p
}

// WithModifiedSince returns a copy of p restricted to customers modified after t
func (p ListParams) WithModifiedSince(t time.Time) ListParams {
	p.ModifiedSince = client.NewTime(t)
	return p
}

// WithPage returns a copy of p for the given page
func (p ListParams) WithPage(page int) ListParams {
	p.Page = page
	return p
}
