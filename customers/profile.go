package customers

import "slices"

// Profile is the writable part of a customer, sent on create and update.
// Every With method returns a modified copy; the receiver and any slices
// passed in are never shared with the result.
type Profile struct {
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Emails         []Email         `json:"emails"`
	Organization   string          `json:"organization,omitempty"`
	JobTitle       string          `json:"jobTitle,omitempty"`
	Background     string          `json:"background,omitempty"`
	Address        *Address        `json:"address,omitempty"`
	SocialProfiles []SocialProfile `json:"socialProfiles,omitempty"`
	Phones         []Phone         `json:"phones,omitempty"`
	Chats          []Chat          `json:"chats,omitempty"`
	Websites       []Website       `json:"websites,omitempty"`
}

// NewProfile builds a profile with the fields the API requires
func NewProfile(firstName, lastName string, emails ...Email) Profile {
	return Profile{
		FirstName: firstName,
		LastName:  lastName,
		Emails:    slices.Clone(emails),
	}
}

func (p Profile) WithFirstName(name string) Profile {
	p.FirstName = name
	return p.detach()
}

func (p Profile) WithLastName(name string) Profile {
	p.LastName = name
	return p.detach()
}

func (p Profile) WithEmails(emails ...Email) Profile {
	p = p.detach()
	p.Emails = slices.Clone(emails)
	return p
}

func (p Profile) WithOrganization(organization string) Profile {
	p.Organization = organization
	return p.detach()
}

func (p Profile) WithJobTitle(title string) Profile {
	p.JobTitle = title
	return p.detach()
}

func (p Profile) WithBackground(background string) Profile {
	p.Background = background
	return p.detach()
}

func (p Profile) WithAddress(address Address) Profile {
	p = p.detach()
	address.Lines = slices.Clone(address.Lines)
	p.Address = &address
	return p
}

func (p Profile) WithSocialProfiles(profiles ...SocialProfile) Profile {
	p = p.detach()
	p.SocialProfiles = slices.Clone(profiles)
	return p
}

func (p Profile) WithPhones(phones ...Phone) Profile {
	p = p.detach()
	p.Phones = slices.Clone(phones)
	return p
}

func (p Profile) WithChats(chats ...Chat) Profile {
	p = p.detach()
	p.Chats = slices.Clone(chats)
	return p
}

func (p Profile) WithWebsites(websites ...Website) Profile {
	p = p.detach()
	p.Websites = slices.Clone(websites)
	return p
}

// detach deep copies the reference fields of a value copy
func (p Profile) detach() Profile {
	p.Emails = slices.Clone(p.Emails)
	p.SocialProfiles = slices.Clone(p.SocialProfiles)
	p.Phones = slices.Clone(p.Phones)
	p.Chats = slices.Clone(p.Chats)
	p.Websites = slices.Clone(p.Websites)
	if p.Address != nil {
		addr := *p.Address
		addr.Lines = slices.Clone(addr.Lines)
		p.Address = &addr
	}
	return p
}
