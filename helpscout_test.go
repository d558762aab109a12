package helpscout

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/helpscout/client"
	"github.com/s0up4200/helpscout/config"
	"github.com/s0up4200/helpscout/conversations"
)

func TestNew(t *testing.T) {
	_, err := New("", zerolog.Nop())
	assert.ErrorIs(t, err, client.ErrInvalidConfig)

	hs, err := New("key", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, client.DefaultBaseURL, hs.BaseURL())
	assert.NotNil(t, hs.Conversations)
	assert.NotNil(t, hs.Customers)
	assert.NotNil(t, hs.Mailboxes)
	assert.NotNil(t, hs.Reports)
	assert.NotNil(t, hs.Tags)
	assert.NotNil(t, hs.Teams)
	assert.NotNil(t, hs.Users)
}

func TestServicesShareClient(t *testing.T) {
	var unavailable atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _, _ := r.BasicAuth()
		assert.Equal(t, "key", user)

		switch r.URL.Path {
		case "/v1/users/me.json":
			fmt.Fprint(w, `{"item":{"id":1,"firstName":"Jack","lastName":"Sprout","type":"user","createdAt":"2011-04-01T03:18:33Z"}}`)
		case "/v1/mailboxes/5/conversations.json":
			if unavailable.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				fmt.Fprint(w, "<html>maintenance</html>")
				return
			}
			assert.Equal(t, "closed", r.URL.Query().Get("status"))
			fmt.Fprint(w, `{"page":1,"pages":1,"count":1,"items":[{"id":9,"status":"closed"}]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	hs, err := New("key", zerolog.Nop(),
		client.WithBaseURL(server.URL+"/v1"),
		client.WithRetryPolicy(client.RetryPolicy{Count: 2, Wait: time.Millisecond}),
	)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, hs.TestConnection(ctx))

	me, err := hs.Users.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jack Sprout", me.Item.Name())

	convs, err := hs.Conversations.ListAll(ctx, 5, conversations.ListParams{}.WithStatus(conversations.StatusClosed))
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, int32(2), unavailable.Load())
}

func TestNewFromConfig(t *testing.T) {
	cfg := &config.Config{
		HelpScout: config.HelpScoutConfig{
			BaseURL:     "https://proxy.example.com/v1",
			APIKey:      "key",
			Retry:       config.RetryConfig{Count: 1},
			Concurrency: 2,
		},
	}

	hs, err := NewFromConfig(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "https://proxy.example.com/v1", hs.BaseURL())
	assert.Equal(t, uint(1), hs.RetryPolicy().Count)
	assert.Equal(t, 2, hs.Concurrency())

	cfg.HelpScout.APIKey = ""
	_, err = NewFromConfig(cfg, zerolog.Nop())
	assert.ErrorIs(t, err, client.ErrInvalidConfig)
}
