package mailboxes

import "time"

// Mailbox represents a Help Scout mailbox
type Mailbox struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`

	// Present on the mailbox object but not always on list responses
	CustomFields []CustomField `json:"customFields,omitempty"`
	// Present on single mailbox responses
	Folders []Folder `json:"folders,omitempty"`
}

// MailboxRef is the short form embedded in other resources
type MailboxRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CustomFieldType is the kind of value a custom field holds
type CustomFieldType string

const (
	CustomFieldSingleLine CustomFieldType = "SINGLE_LINE"
	CustomFieldMultiLine  CustomFieldType = "MULTI_LINE"
	CustomFieldData       CustomFieldType = "DATA"
	CustomFieldNumber     CustomFieldType = "NUMBER"
	CustomFieldDropdown   CustomFieldType = "DROPDOWN"
)

// CustomField is a mailbox level custom field definition
type CustomField struct {
	ID        int             `json:"id"`
	FieldName string          `json:"fieldName"`
	FieldType CustomFieldType `json:"fieldType"`
	Required  bool            `json:"required"`
	Order     int             `json:"order"`
}

// Folder is a mailbox folder with conversation counts
type Folder struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	UserID      int       `json:"userId"`
	TotalCount  int       `json:"totalCount"`
	ActiveCount int       `json:"activeCount"`
	ModifiedAt  time.Time `json:"modifiedAt"`
}

// ListParams filters mailbox listings
type ListParams struct {
	Page int `url:"page,omitempty"`
}
