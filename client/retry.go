package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

const (
	// DefaultRetryCount is the number of attempts made against a 503
	DefaultRetryCount = 3
	// DefaultRetryWait is the fixed delay between attempts
	DefaultRetryWait = 250 * time.Millisecond
)

// RetryPolicy controls how a call reacts to a 503 without a JSON body.
// Count is the total number of attempts, so 3 means one try and two
// retries. Zero behaves like one.
type RetryPolicy struct {
	Count uint
	Wait  time.Duration
}

// DefaultRetryPolicy returns three attempts spaced 250ms apart
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Count: DefaultRetryCount, Wait: DefaultRetryWait}
}

func (p RetryPolicy) attempts() int {
	if p.Count == 0 {
		return 1
	}
	return int(p.Count)
}

// retrier builds the retry loop for a single call from the policy read at call start
func (c *Client) retrier(policy RetryPolicy) *retryablehttp.Client {
	return &retryablehttp.Client{
		HTTPClient:   c.httpClient,
		Logger:       leveledLogger{c.logger},
		RetryWaitMin: policy.Wait,
		RetryWaitMax: policy.Wait,
		RetryMax:     policy.attempts() - 1,
		CheckRetry:   retryUnavailable,
		Backoff:      fixedBackoff,
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
	}
}

// retryUnavailable retries only a 503 whose body is not JSON. The body is
// always put back so the caller can classify the final response.
func retryUnavailable(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	if err != nil || resp == nil {
		return false, nil
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		return false, nil
	}

	body, readErr := io.ReadAll(resp.Body)
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(body))
	if readErr != nil {
		return false, fmt.Errorf("%w: %w", ErrIO, readErr)
	}

	return !json.Valid(body), nil
}

func fixedBackoff(wait, _ time.Duration, _ int, _ *http.Response) time.Duration {
	return wait
}

// leveledLogger adapts zerolog to retryablehttp.LeveledLogger
type leveledLogger struct {
	logger zerolog.Logger
}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}
