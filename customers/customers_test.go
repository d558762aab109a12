package customers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
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

func uniqueEmail() string {
	return fmt.Sprintf("%s@example.com", uuid.NewString())
}

func TestList(t *testing.T) {
	email := uniqueEmail()
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/customers.json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, email, q.Get("email"))
		assert.Equal(t, "Vernon", q.Get("firstName"))
		assert.Equal(t, "2020-05-06T07:08:09Z", q.Get("modifiedSince"))
		assert.False(t, q.Has("lastName"))
		fmt.Fprintf(w, `{"page":1,"pages":1,"count":1,"items":[{
			"id": 29418, "firstName": "Vernon", "lastName": "Bear", "fullName": "Vernon Bear",
			"photoType": "gravatar", "gender": "male", "organization": "Acme",
			"createdAt": "2012-07-23T12:34:12Z", "modifiedAt": null,
			"emails": [{"id": 1, "value": %q, "location": "work"}]
		}]}`, email)
	})

	since := time.Date(2020, 5, 6, 9, 8, 9, 0, time.FixedZone("CEST", 2*60*60))
	params := ListParams{}.WithEmail(email).WithFirstName("Vernon").WithModifiedSince(since)

	got, err := svc.List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)

	c := got.Items[0]
	assert.Equal(t, 29418, c.ID)
	assert.Equal(t, PhotoGravatar, c.PhotoType)
	assert.Equal(t, GenderMale, c.Gender)
	assert.Nil(t, c.ModifiedAt)
	require.Len(t, c.Emails, 1)
	assert.Equal(t, email, c.Emails[0].Value)
	assert.Equal(t, EmailWork, c.Emails[0].Location)
}

func TestListByMailbox(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mailboxes/42/customers.json", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		fmt.Fprint(w, `{"page":3,"pages":3,"count":0,"items":[]}`)
	})

	got, err := svc.ListByMailbox(context.Background(), 42, ListParams{}.WithPage(3))
	require.NoError(t, err)
	assert.False(t, got.HasNext())
	assert.Empty(t, got.Items)
}

func TestListAll(t *testing.T) {
	var calls atomic.Int32
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "Bear", r.URL.Query().Get("lastName"))
		page := r.URL.Query().Get("page")
		fmt.Fprintf(w, `{"page":%s,"pages":3,"count":3,"items":[{"id":%s,"createdAt":"2012-07-23T12:34:12Z"}]}`, page, page)
	})

	got, err := svc.ListAll(context.Background(), ListParams{}.WithLastName("Bear"))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[2].ID)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGet(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/customers/7.json" {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"code":404,"error":"Customer not found"}`)
			return
		}
		fmt.Fprint(w, `{"item":{
			"id": 7, "firstName": "Ada", "lastName": "Lovelace", "gender": "female",
			"createdAt": "2012-07-23T12:34:12Z",
			"address": {"id": 1, "lines": ["1 Main St"], "city": "London", "state": "", "postalCode": "N1", "country": "GB", "createdAt": "2012-07-23T12:34:12Z"},
			"phones": [], "chats": [{"value": "ada", "type": "skype"}],
			"socialProfiles": [{"value": "https://twitter.com/ada", "type": "twitter"}],
			"websites": [{"value": "https://ada.example.com"}]
		}}`)
	})

	got, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, got.Item.Address)
	assert.Equal(t, []string{"1 Main St"}, got.Item.Address.Lines)
	assert.Equal(t, ChatSkype, got.Item.Chats[0].Type)
	assert.Equal(t, SocialTwitter, got.Item.SocialProfiles[0].Type)
	assert.Empty(t, got.Item.Phones)

	_, err = svc.Get(context.Background(), 8)
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrUserNotFound)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNotFound())
	assert.Equal(t, "Customer not found", apiErr.Status.Error)
}

func TestCreate(t *testing.T) {
	email := uniqueEmail()
	created := time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC)

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/customers.json", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "Ada", body["firstName"])
		assert.Equal(t, "Lovelace", body["lastName"])
		assert.Equal(t, "Analytical Engines", body["organization"])
		assert.NotContains(t, body, "jobTitle")
		assert.NotContains(t, body, "phones")

		emails, ok := body["emails"].([]any)
		if assert.True(t, ok) && assert.Len(t, emails, 1) {
			assert.Equal(t, map[string]any{"value": email, "location": "work"}, emails[0])
		}

		addr, ok := body["address"].(map[string]any)
		if assert.True(t, ok) {
			assert.Equal(t, "London", addr["city"])
			assert.Equal(t, "2021-01-02T03:04:05Z", addr["createdAt"])
		}

		w.WriteHeader(http.StatusCreated)
	})

	profile := NewProfile("Ada", "Lovelace", NewEmail(email)).
		WithOrganization("Analytical Engines").
		WithAddress(NewAddress("London", "", "GB", "N1", []string{"1 Main St"}, created))

	require.NoError(t, svc.Create(context.Background(), profile))
}

func TestCreateRejectsIncompleteProfile(t *testing.T) {
	var calls atomic.Int32
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	tests := []struct {
		name    string
		profile Profile
	}{
		{"no name", NewProfile("", "", NewEmail(uniqueEmail()))},
		{"empty email", NewProfile("Ada", "", Email{Location: EmailHome})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(context.Background(), tt.profile)
			assert.ErrorIs(t, err, ErrInvalidProfile)

			err = svc.Update(context.Background(), 1, tt.profile)
			assert.ErrorIs(t, err, ErrInvalidProfile)
		})
	}
	assert.Zero(t, calls.Load())
}

func TestUpdate(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		if r.URL.Path == "/customers/99.json" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"code":400,"error":"Invalid email"}`)
			return
		}
		assert.Equal(t, "/customers/7.json", r.URL.Path)

		var body Profile
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Byron", body.LastName)
		assert.Equal(t, []Phone{{Value: "555-1234", Location: PhoneMobile}}, body.Phones)
		w.WriteHeader(http.StatusOK)
	})

	profile := NewProfile("Ada", "Byron", NewEmail(uniqueEmail())).
		WithPhones(Phone{Value: "555-1234", Location: PhoneMobile})

	require.NoError(t, svc.Update(context.Background(), 7, profile))

	err := svc.Update(context.Background(), 99, profile)
	assert.ErrorIs(t, err, client.ErrBadRequest)
	assert.Contains(t, err.Error(), "failed to update customer 99")
}

func TestProfileImmutable(t *testing.T) {
	emails := []Email{NewEmail("a@example.com")}
	lines := []string{"line 1"}

	base := NewProfile("Ada", "Lovelace", emails...).
		WithAddress(Address{City: "London", Lines: lines}).
		WithWebsites(Website{Value: "https://a.example.com"})

	emails[0].Value = "changed@example.com"
	lines[0] = "changed"

	derived := base.WithJobTitle("Mathematician").WithWebsites(Website{Value: "https://b.example.com"})
	derived.Address.City = "Paris"
	derived.Emails[0].Location = EmailOther

	assert.Equal(t, "a@example.com", base.Emails[0].Value)
	assert.Equal(t, EmailWork, base.Emails[0].Location)
	assert.Equal(t, "line 1", base.Address.Lines[0])
	assert.Equal(t, "London", base.Address.City)
	assert.Empty(t, base.JobTitle)
	assert.Equal(t, "https://a.example.com", base.Websites[0].Value)

	assert.Equal(t, "Mathematician", derived.JobTitle)
	assert.Equal(t, "https://b.example.com", derived.Websites[0].Value)
}

func TestNewAddress(t *testing.T) {
	lines := []string{"221B Baker St"}
	loc := time.FixedZone("EST", -5*60*60)
	addr := NewAddress("London", "", "GB", "NW1", lines, time.Date(2020, 1, 1, 7, 0, 0, 123, loc))
	lines[0] = "changed"

	assert.Equal(t, []string{"221B Baker St"}, addr.Lines)
	assert.Equal(t, time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC), addr.CreatedAt)
}
