package reports

import "time"

// UserReport is the overall report for a single user
type UserReport struct {
	FilterTags []FilterTag                   `json:"filterTags"`
	User       UserDetail                    `json:"user"`
	Current    UserTimeRangeStatistics       `json:"current"`
	Previous   *UserTimeRangeStatistics      `json:"previous,omitempty"`
	Deltas     *UserMultiTimeRangeStatistics `json:"deltas,omitempty"`
}

// UserDetail describes the user the report is about
type UserDetail struct {
	ID                   int       `json:"id"`
	HasPhoto             bool      `json:"hasPhoto"`
	CreatedAt            time.Time `json:"createdAt"`
	Name                 string    `json:"name"`
	TotalCustomersHelped int       `json:"totalCustomersHelped"`
	PhotoURL             string    `json:"photoUrl"`
}

// Rating is a satisfaction rating with the figures of its conversation
type Rating struct {
	RatingID          string  `json:"ratingId"`
	RepliesSent       float64 `json:"repliesSent"`
	FirstResponseTime Seconds `json:"firstResponseTime"`
	ResolveTime       Seconds `json:"resolveTime"`
	ResponseTime      Seconds `json:"responseTime"`
}

type UserTimeRangeStatistics struct {
	StartDate                   time.Time `json:"startDate"`
	EndDate                     time.Time `json:"endDate"`
	TotalDays                   int       `json:"totalDays"`
	Resolved                    int       `json:"resolved"`
	ConversationsCreated        int       `json:"conversationsCreated"`
	Closed                      int       `json:"closed"`
	Ratings                     []Rating  `json:"ratings,omitempty"`
	TotalReplies                int       `json:"totalReplies"`
	ResolvedOnFirstReply        int       `json:"resolvedOnFirstReply"`
	PercentResolvedOnFirstReply float64   `json:"percentResolvedOnFirstReply"`
	RepliesToResolve            float64   `json:"repliesToResolve"`
	HandleTime                  Seconds   `json:"handleTime"`
	HappinessScore              float64   `json:"happinessScore"`
	ResponseTime                Seconds   `json:"responseTime"`
	ResolutionTime              Seconds   `json:"resolutionTime"`
	RepliesPerDay               float64   `json:"repliesPerDay"`
	CustomersHelped             int       `json:"customersHelped"`
	TotalConversations          int       `json:"totalConversations"`
	ConversationsPerDay         float64   `json:"conversationsPerDay"`
	BusiestDay                  int       `json:"busiestDay"`
}

// UserMultiTimeRangeStatistics holds percentage changes between the
// current and previous range
type UserMultiTimeRangeStatistics struct {
	TotalConversations   float64 `json:"totalConversations"`
	CustomersHelped      float64 `json:"customersHelped"`
	HappinessScore       float64 `json:"happinessScore"`
	RepliesPerDay        float64 `json:"repliesPerDay"`
	ResolvedOnFirstReply float64 `json:"resolvedOnFirstReply"`
	HandleTime           float64 `json:"handleTime"`
	ConversationsPerDay  float64 `json:"conversationsPerDay"`
	Resolved             float64 `json:"resolved"`
	RepliesToResolve     float64 `json:"repliesToResolve"`
	ActiveConversations  float64 `json:"activeConversations"`
	TotalReplies         float64 `json:"totalReplies"`
	Closed               float64 `json:"closed"`
	ResponseTime         float64 `json:"responseTime"`
	ResolutionTime       float64 `json:"resolutionTime"`
	ConversationsCreated float64 `json:"conversationsCreated"`
}
