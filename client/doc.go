// Package client provides the request pipeline for the Help Scout v1 API.
//
// Every resource package (mailboxes, customers, users, teams, tags,
// conversations, reports) is a thin layer over this package: it builds a
// path and typed parameters, calls Get, Post or Put, and decodes the JSON
// that comes back.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: authentication, URL construction, response classification
//   - RetryPolicy: bounded fixed-delay retry of 503 responses without a JSON body
//   - Collection and Item: the generic response envelopes
//   - FetchAll: concurrent pagination over a Collection endpoint, bounded by WithConcurrency
//   - Errors: sentinel errors and the structured APIError
//
// # Usage
//
//	logger := zerolog.New(os.Stdout)
//	c, err := client.New(
//		"your-api-key",
//		logger,
//		client.WithTimeout(10*time.Second),
//		client.WithRetryPolicy(client.RetryPolicy{Count: 5, Wait: time.Second}),
//		client.WithRateLimit(3, 5),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	raw, err := c.Get(ctx, "mailboxes.json", nil)
//
// # Retries
//
// Only a 503 whose body is not JSON is treated as transient. RetryPolicy.Count
// is the total number of attempts, and the wait between them honours context
// cancellation. The policy can be changed with SetRetryPolicy at any time; a
// call reads it once when it starts.
//
// # Error Handling
//
// Responses with a JSON body and a documented error status become an
// *APIError that unwraps to ErrBadRequest, ErrUnauthorizedKey, ErrForbidden,
// ErrUserNotFound, ErrTooManyRequests or ErrInternalServerError. Any other
// status with a JSON body unwraps to ErrUnexpectedStatus.
//
//	var apiErr *client.APIError
//	if errors.As(err, &apiErr) && apiErr.IsRateLimited() {
//		// back off
//	}
//
//	if errors.Is(err, client.ErrServiceUnavailable) {
//		// retries exhausted
//	}
package client
