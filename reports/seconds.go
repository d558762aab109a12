package reports

import (
	"math"
	"time"
)

// Seconds is a duration the API reports as fractional seconds
type Seconds float64

// Duration converts s to a time.Duration rounded to the millisecond
func (s Seconds) Duration() time.Duration {
	return time.Duration(math.Round(float64(s)*1000)) * time.Millisecond
}
