// Package webhook verifies Help Scout webhook deliveries.
//
// Help Scout signs each delivery with base64(HMAC-SHA1(secret, body)) and
// sends the result in the X-HelpScout-Signature header. Verify checks a
// single request; Middleware guards an http.Handler:
//
//	v := webhook.NewVerifier(secret, logger)
//	r.With(v.Middleware).Post("/helpscout", handler)
//
// Handlers behind the middleware read the event with EventFromContext and
// can read the request body again.
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

const (
	SignatureHeader = "X-HelpScout-Signature"
	EventHeader     = "X-HelpScout-Event"

	// MaxBodySize caps the payload read during verification
	MaxBodySize = 10 << 20
)

var (
	ErrMissingSignature = errors.New("missing webhook signature")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrBodyTooLarge     = errors.New("webhook body too large")
)

// Event names the kind of webhook delivery
type Event string

const (
	EventConvoAgentReplyCreated    Event = "convo.agent.reply.created"
	EventConvoAssigned             Event = "convo.assigned"
	EventConvoCreated              Event = "convo.created"
	EventConvoCustomerReplyCreated Event = "convo.customer.reply.created"
	EventConvoDeleted              Event = "convo.deleted"
	EventConvoMerged               Event = "convo.merged"
	EventConvoMoved                Event = "convo.moved"
	EventConvoNoteCreated          Event = "convo.note.created"
	EventConvoStatus               Event = "convo.status"
	EventConvoTags                 Event = "convo.tags"
	EventCustomerCreated           Event = "customer.created"
	EventSatisfactionRatings       Event = "satisfaction.ratings"
)

// Sign returns the signature Help Scout sends for body
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// ValidateSignature reports whether signature matches body under secret.
// The comparison runs in constant time.
func ValidateSignature(secret string, body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	return hmac.Equal([]byte(Sign(secret, body)), []byte(signature))
}

// Verifier checks webhook requests against a shared secret
type Verifier struct {
	secret string
	logger zerolog.Logger
}

// NewVerifier creates a verifier for secret
func NewVerifier(secret string, logger zerolog.Logger) *Verifier {
	return &Verifier{secret: secret, logger: logger}
}

// Verify checks the signature of r and returns the event and raw body.
// The body of r is replaced so later readers see the same bytes.
func (v *Verifier) Verify(r *http.Request) (Event, []byte, error) {
	signature := r.Header.Get(SignatureHeader)
	if signature == "" {
		return "", nil, ErrMissingSignature
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodySize+1))
	r.Body.Close()
	if err != nil {
		return "", nil, fmt.Errorf("failed to read webhook body: %w", err)
	}
	if len(body) > MaxBodySize {
		return "", nil, ErrBodyTooLarge
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	if !ValidateSignature(v.secret, body, signature) {
		return "", nil, ErrInvalidSignature
	}

	return Event(r.Header.Get(EventHeader)), body, nil
}

// Middleware rejects requests that fail verification with 401, or 413 when
// the body is too large
func (v *Verifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		event, _, err := v.Verify(r)
		if err != nil {
			v.logger.Warn().
				Err(err).
				Str("path", r.URL.Path).
				Str("remote", r.RemoteAddr).
				Msg("Rejected Help Scout webhook")

			status := http.StatusUnauthorized
			if errors.Is(err, ErrBodyTooLarge) {
				status = http.StatusRequestEntityTooLarge
			}
			http.Error(w, http.StatusText(status), status)
			return
		}

		v.logger.Debug().
			Str("event", string(event)).
			Str("path", r.URL.Path).
			Msg("Verified Help Scout webhook")

		next.ServeHTTP(w, r.WithContext(withEvent(r.Context(), event)))
	})
}

type eventKey struct{}

func withEvent(ctx context.Context, event Event) context.Context {
	return context.WithValue(ctx, eventKey{}, event)
}

// EventFromContext returns the event stored by Middleware
func EventFromContext(ctx context.Context) (Event, bool) {
	event, ok := ctx.Value(eventKey{}).(Event)
	return event, ok
}
