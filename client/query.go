package client

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
)

// TimeFormat is the timestamp layout the API accepts in query strings
const TimeFormat = "2006-01-02T15:04:05Z"

// Time renders as a second precision UTC timestamp in query strings.
// The zero value is treated as empty by omitempty.
type Time struct {
	time.Time
}

// NewTime wraps t
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// EncodeValues implements query.Encoder
func (t Time) EncodeValues(key string, v *url.Values) error {
	if t.IsZero() {
		return nil
	}
	v.Set(key, t.UTC().Format(TimeFormat))
	return nil
}

// encodeQuery turns the accepted parameter shapes into url.Values
func encodeQuery(params any) (url.Values, error) {
	switch p := params.(type) {
	case nil:
		return nil, nil
	case url.Values:
		return p, nil
	case map[string]string:
		values := make(url.Values, len(p))
		for k, v := range p {
			values.Set(k, v)
		}
		return values, nil
	}

	values, err := query.Values(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestURLEncode, err)
	}
	return values, nil
}
