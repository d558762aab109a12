package users

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

const userJSON = `{
	"id": 4, "firstName": "Jack", "lastName": "Sprout", "email": "jack.sprout@gmail.com",
	"role": "owner", "timezone": "America/New_York", "photoUrl": "https://example.com/jack.png",
	"createdAt": "2011-04-01T03:18:33Z", "modifiedAt": "2012-07-24T20:18:33Z", "type": "user"
}`

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
		assert.Equal(t, "/users.json", r.URL.Path)
		assert.Equal(t, "team", r.URL.Query().Get("type"))
		assert.False(t, r.URL.Query().Has("page"))
		fmt.Fprintf(w, `{"page":1,"pages":1,"count":1,"items":[%s]}`, userJSON)
	})

	got, err := svc.List(context.Background(), ListParams{}.WithType(TypeTeam))
	require.NoError(t, err)
	require.Len(t, got.Items, 1)

	u := got.Items[0]
	assert.Equal(t, "Jack Sprout", u.Name())
	assert.Equal(t, "America/New_York", u.Timezone)
	assert.Equal(t, TypeUser, u.Type)
	assert.False(t, u.IsTeam())
	require.NotNil(t, u.ModifiedAt)
}

func TestListAll(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		assert.Equal(t, "user", r.URL.Query().Get("type"))
		fmt.Fprintf(w, `{"page":%s,"pages":2,"count":2,"items":[{"id":%s,"type":"user","createdAt":"2011-04-01T03:18:33Z"}]}`, page, page)
	})

	got, err := svc.ListAll(context.Background(), ListParams{}.WithType(TypeUser))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)
}

func TestGetAndMe(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/4.json", "/users/me.json":
			fmt.Fprintf(w, `{"item":%s}`, userJSON)
		default:
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"code":401,"error":"Invalid API Key"}`)
		}
	})

	got, err := svc.Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Item.ID)

	me, err := svc.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "jack.sprout@gmail.com", me.Item.Email)

	_, err = svc.Get(context.Background(), 5)
	assert.ErrorIs(t, err, client.ErrUnauthorizedKey)
}

func TestListByMailbox(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mailboxes/12/users.json", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		fmt.Fprintf(w, `{"page":2,"pages":2,"count":1,"items":[%s]}`, userJSON)
	})

	got, err := svc.ListByMailbox(context.Background(), 12, ListParams{}.WithPage(2))
	require.NoError(t, err)
	assert.False(t, got.HasNext())
	assert.Len(t, got.Items, 1)
}

func TestName(t *testing.T) {
	tests := []struct {
		user     User
		expected string
	}{
		{User{FirstName: "Jack", LastName: "Sprout"}, "Jack Sprout"},
		{User{FirstName: "Support"}, "Support"},
		{User{LastName: "Sprout"}, "Sprout"},
		{User{}, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.user.Name())
	}
}
