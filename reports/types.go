package reports

import (
	"time"

	"github.com/s0up4200/helpscout/conversations"
)

// FilterTag is a tag the report can be filtered by
type FilterTag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TopStatistics is a total with its leading entries
type TopStatistics[T any] struct {
	Count int64 `json:"count"`
	Top   []T   `json:"top"`
}

// Statistics is one ranked entry, such as a tag or a customer
type Statistics struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name,omitempty"`
	Count           int64    `json:"count"`
	PreviousCount   *int64   `json:"previousCount,omitempty"`
	Percent         float64  `json:"percent"`
	PreviousPercent *float64 `json:"previousPercent,omitempty"`
	DeltaPercent    *float64 `json:"deltaPercent,omitempty"`
}

// ReplyStatistics counts replies for one mailbox
type ReplyStatistics struct {
	Name            string   `json:"name,omitempty"`
	Count           int64    `json:"count"`
	PreviousCount   *int64   `json:"previousCount,omitempty"`
	Percent         float64  `json:"percent"`
	PreviousPercent *float64 `json:"previousPercent,omitempty"`
	DeltaPercent    *float64 `json:"deltaPercent,omitempty"`
	MailboxID       int      `json:"mailboxId"`
}

// FieldStatistics summarizes custom field answers
type FieldStatistics struct {
	Count  int64                   `json:"count"`
	Fields []CustomFieldStatistics `json:"fields"`
}

type CustomFieldStatistics struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	MailboxID int                `json:"mailboxId"`
	Values    []Statistics       `json:"values"`
	Summary   CustomFieldSummary `json:"summary"`
}

type CustomFieldSummary struct {
	Total                     int64   `json:"total"`
	TotalAnswered             int64   `json:"totalAnswered"`
	PreviousTotal             *int64  `json:"previousTotal,omitempty"`
	PreviousTotalAnswered     *int64  `json:"previousTotalAnswered,omitempty"`
	UnansweredDelta           float64 `json:"unansweredDelta"`
	UnansweredPreviousPercent float64 `json:"unansweredPreviousPercent"`
	UnansweredPercent         float64 `json:"unansweredPercent"`
}

// BusyTimeStatistics is the conversation count for one hour of one weekday
type BusyTimeStatistics struct {
	Day   int `json:"day"`
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// ConversationsReport is the overall conversations report
type ConversationsReport struct {
	FilterTags       []FilterTag                               `json:"filterTags"`
	CompanyID        *int64                                    `json:"companyId,omitempty"`
	BusiestDay       BusyTimeStatistics                        `json:"busiestDay"`
	BusiestTimeStart *int                                      `json:"busiestTimeStart,omitempty"`
	BusiestTimeEnd   *int                                      `json:"busiestTimeEnd,omitempty"`
	Current          ConversationsTimeRangeStatistics          `json:"current"`
	Previous         *ConversationsTimeRangeStatistics         `json:"previous,omitempty"`
	Delta            *ConversationsMultipleTimeRangeStatistics `json:"delta,omitempty"`
	Tags             TopStatistics[Statistics]                 `json:"tags"`
	Customers        TopStatistics[Statistics]                 `json:"customers"`
	Replies          TopStatistics[ReplyStatistics]            `json:"replies"`
	Workflows        TopStatistics[Statistics]                 `json:"workflows"`
}

type ConversationsTimeRangeStatistics struct {
	StartDate            time.Time `json:"startDate"`
	EndDate              time.Time `json:"endDate"`
	TotalConversations   int64     `json:"totalConversations"`
	ConversationsCreated int64     `json:"conversationsCreated"`
	NewConversations     int64     `json:"newConversations"`
	Customers            int64     `json:"customers"`
	ConversationsPerDay  float64   `json:"conversationsPerDay"`
}

// ConversationsMultipleTimeRangeStatistics holds percentage changes
// between the current and previous range
type ConversationsMultipleTimeRangeStatistics struct {
	TotalConversations   float64 `json:"totalConversations"`
	ConversationsCreated float64 `json:"conversationsCreated"`
	NewConversations     float64 `json:"newConversations"`
	Customers            float64 `json:"customers"`
	ConversationsPerDay  float64 `json:"conversationsPerDay"`
}

// NewConversationsStatistics is the count of new conversations in one interval
type NewConversationsStatistics struct {
	Start time.Time `json:"start"`
	Count int       `json:"count"`
}

// NewConversationsReport groups new conversations by the requested interval
type NewConversationsReport struct {
	Current  []NewConversationsStatistics `json:"current"`
	Previous []NewConversationsStatistics `json:"previous,omitempty"`
}

// ReceivedMessagesStatistics is the count of received messages in one interval
type ReceivedMessagesStatistics struct {
	Date     time.Time `json:"date"`
	Messages int       `json:"messages"`
}

// ReceivedMessagesReport groups received messages by the requested interval
type ReceivedMessagesReport struct {
	Current  []ReceivedMessagesStatistics `json:"current"`
	Previous []ReceivedMessagesStatistics `json:"previous,omitempty"`
}

// ColorTag is a tag as shown on drill down rows
type ColorTag struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// AbbreviatedConversation is one drill down row
type AbbreviatedConversation struct {
	ID               int                  `json:"id"`
	Number           int                  `json:"number"`
	Type             conversations.Type   `json:"type"`
	MailboxID        int                  `json:"mailboxid"`
	Attachments      bool                 `json:"attachments"`
	Subject          string               `json:"subject"`
	Status           conversations.Status `json:"status"`
	ThreadCount      int                  `json:"threadCount"`
	Preview          string               `json:"preview"`
	CustomerName     string               `json:"customerName"`
	CustomerEmail    string               `json:"customerEmail"`
	CustomerIDs      []int                `json:"customerIds"`
	ModifiedAt       time.Time            `json:"modifiedAt"`
	WaitingSince     time.Time            `json:"waitingSince"`
	WaitingSinceType int                  `json:"waitingSinceType"`
	AssignedID       int                  `json:"assignedid"`
	AssignedName     string               `json:"assignedName,omitempty"`
	Tags             []ColorTag           `json:"tags"`
}

// DrillDownPage is one page of drill down rows. The report uses its own
// paging shape rather than the standard collection envelope.
type DrillDownPage struct {
	Page    int                       `json:"page"`
	Pages   int                       `json:"pages"`
	Count   int                       `json:"count"`
	Results []AbbreviatedConversation `json:"results"`
}

// HasNext reports whether another page follows this one
func (d DrillDownPage) HasNext() bool {
	return d.Page < d.Pages
}

// DrillDownReport lists the conversations behind a report
type DrillDownReport struct {
	Conversations DrillDownPage `json:"conversations"`
}
