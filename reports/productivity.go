package reports

import "time"

// ProductivityReport is the overall productivity report
type ProductivityReport struct {
	FilterTags []FilterTag                              `json:"filterTags"`
	Current    ProductivityTimeRangeStatistics          `json:"current"`
	Previous   *ProductivityTimeRangeStatistics         `json:"previous,omitempty"`
	Delta      *ProductivityMultipleTimeRangeStatistics `json:"delta,omitempty"`
}

// ProductivityTimeRangeStatistics are the productivity figures for one range.
// Every field is optional because the API leaves out figures it has no data for.
type ProductivityTimeRangeStatistics struct {
	StartDate                   *time.Time `json:"startDate,omitempty"`
	EndDate                     *time.Time `json:"endDate,omitempty"`
	TotalConversations          *int       `json:"totalConversations,omitempty"`
	ResolutionTime              *Seconds   `json:"resolutionTime,omitempty"`
	RepliesToResolve            *float64   `json:"repliesToResolve,omitempty"`
	ResponseTime                *Seconds   `json:"responseTime,omitempty"`
	FirstResponseTime           *Seconds   `json:"firstResponseTime,omitempty"`
	Resolved                    *int       `json:"resolved,omitempty"`
	ResolvedOnFirstReply        *int       `json:"resolvedOnFirstReply,omitempty"`
	Closed                      *int       `json:"closed,omitempty"`
	RepliesSent                 *int       `json:"repliesSent,omitempty"`
	HandleTime                  *Seconds   `json:"handleTime,omitempty"`
	PercentResolvedOnFirstReply *float64   `json:"percentResolvedOnFirstReply,omitempty"`
}

// ProductivityMultipleTimeRangeStatistics holds percentage changes
// between the current and previous range
type ProductivityMultipleTimeRangeStatistics struct {
	TotalConversations   float64 `json:"totalConversations"`
	RepliesSent          float64 `json:"repliesSent"`
	FirstResponseTime    float64 `json:"firstResponseTime"`
	Resolved             float64 `json:"resolved"`
	RepliesToResolve     float64 `json:"repliesToResolve"`
	Closed               float64 `json:"closed"`
	ResolvedOnFirstReply float64 `json:"resolvedOnFirstReply"`
	ResponseTime         float64 `json:"responseTime"`
	HandleTime           float64 `json:"handleTime"`
	ResolutionTime       float64 `json:"resolutionTime"`
}

// RangeStatistics is one bucket of a response, handle or resolution
// time distribution
type RangeStatistics struct {
	ID              int      `json:"id"`
	Count           int      `json:"count"`
	PreviousCount   int      `json:"previousCount"`
	Percent         float64  `json:"percent"`
	PreviousPercent float64  `json:"previousPercent"`
	ResolutionTime  *Seconds `json:"resolutionTime,omitempty"`
}

// Distribution is a bucketed time distribution
type Distribution struct {
	Count         int               `json:"count"`
	PreviousCount int               `json:"previousCount"`
	Ranges        []RangeStatistics `json:"ranges"`
}
