package tags

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/helpscout/client"
)

func newService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := client.New("test-key", zerolog.Nop(), client.WithBaseURL(server.URL))
	require.NoError(t, err)
	return New(c)
}

func TestList(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tags.json", r.URL.Path)
		fmt.Fprint(w, `{"page":1,"pages":1,"count":2,"items":[
			{"id": 1, "tag": "vip", "slug": "vip", "color": "#1f77b4", "count": 12, "createdAt": "2014-02-03T04:05:06Z", "modifiedAt": null},
			{"id": 2, "tag": "refund", "slug": "refund", "color": "none", "count": 0, "createdAt": "2014-02-03T04:05:06Z", "modifiedAt": "2015-01-01T00:00:00Z"}
		]}`)
	})

	got, err := svc.List(context.Background(), ListParams{})
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "vip", got.Items[0].Tag)
	assert.Equal(t, 12, got.Items[0].Count)
	assert.Nil(t, got.Items[0].ModifiedAt)
	require.NotNil(t, got.Items[1].ModifiedAt)
	assert.Equal(t, 2015, got.Items[1].ModifiedAt.Year())
}

func TestListAll(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		fmt.Fprintf(w, `{"page":%s,"pages":2,"count":2,"items":[{"id":%s,"tag":"t%s","createdAt":"2014-02-03T04:05:06Z"}]}`, page, page, page)
	})

	got, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "t1", got[0].Tag)
	assert.Equal(t, "t2", got[1].Tag)
}

func TestListError(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"code":429,"error":"Rate limit exceeded"}`)
	})

	_, err := svc.ListAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrTooManyRequests)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsRateLimited())
}
