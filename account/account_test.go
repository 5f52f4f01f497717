package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigmail/client/gateway"
	"github.com/gigmail/client/model"
	"github.com/gigmail/client/session"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewMemStore()
	require.NoError(t, store.Set("tok", "muso@example.com"))
	gw, err := gateway.New(srv.URL, store)
	require.NoError(t, err)
	return New(gw)
}

// TestSummary tests decoding of the dashboard totals, with omitted
// values defaulting to zero.
func TestSummary(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/endpoint", r.URL.Path)
		w.Write([]byte(`{"totalCampaigns":3,"totalEmailsSent":120,"averageEngagementRate":4.5}`))
	}))

	s, err := c.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Summary{TotalCampaigns: 3, TotalEmailsSent: 120, AverageEngagementRate: 4.5}, s)
}

// TestSettingsRoundTrip tests the get/put settings wrappers.
func TestSettingsRoundTrip(t *testing.T) {
	saved := model.Settings{Language: "en"}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/settings", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(saved)
	})
	mux.HandleFunc("PUT /api/settings", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&saved))
	})

	c := newTestClient(t, mux)

	err := c.SaveSettings(context.Background(), model.Settings{EmailNotifications: true, DarkMode: true, Language: "de"})
	require.NoError(t, err)

	got, err := c.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Settings{EmailNotifications: true, DarkMode: true, Language: "de"}, got)
}

// TestProfile tests the profile wrappers.
func TestProfile(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/profile", r.URL.Path)
		json.NewEncoder(w).Encode(model.Profile{Username: "muso", Email: "muso@example.com"})
	}))

	p, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "muso", p.Username)
}
