package venue

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigmail/client/gateway"
	"github.com/gigmail/client/model"
	"github.com/gigmail/client/session"
)

// newTestResolver returns a resolver backed by a test server running
// the given handler.
func newTestResolver(t *testing.T, handler http.HandlerFunc) *Resolver {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewMemStore()
	require.NoError(t, store.Set("tok", "muso@example.com"))
	gw, err := gateway.New(srv.URL, store)
	require.NoError(t, err)
	return NewResolver(gw)
}

// TestResolveByCity tests email extraction: order preserved, venues
// without an email dropped, duplicates passed through.
func TestResolveByCity(t *testing.T) {
	tests := []struct {
		name   string
		venues []model.Venue
		want   []string
	}{
		{
			name: "empty email dropped, order preserved",
			venues: []model.Venue{
				{ID: "1", Name: "The Corner", Email: "a@x.com"},
				{ID: "2", Name: "Basement Club"},
				{ID: "3", Name: "Riverside Hall", Email: "b@x.com"},
			},
			want: []string{"a@x.com", "b@x.com"},
		},
		{
			name: "duplicates not deduplicated",
			venues: []model.Venue{
				{ID: "1", Email: "bookings@x.com"},
				{ID: "2", Email: "bookings@x.com"},
			},
			want: []string{"bookings@x.com", "bookings@x.com"},
		},
		{
			name:   "no venues",
			venues: nil,
			want:   nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
				json.NewEncoder(w).Encode(map[string][]model.Venue{"venues": test.venues})
			})

			got, err := r.ResolveByCity(context.Background(), "Melbourne")
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

// TestResolveByCityClearedSelection tests that an empty city resets
// the recipient list without querying the directory.
func TestResolveByCityClearedSelection(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		t.Error("no request should be made for a cleared city selection")
	})

	got, err := r.ResolveByCity(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestVenuesEscapesCity tests that the city path segment is escaped.
func TestVenuesEscapesCity(t *testing.T) {
	var gotPath string
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.EscapedPath()
		json.NewEncoder(w).Encode(map[string][]model.Venue{"venues": nil})
	})

	_, err := r.Venues(context.Background(), "New York")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(gotPath, "/api/venues/by-city/New%20York"), "got path %s", gotPath)
}

// TestCities tests unwrapping of the city list.
func TestCities(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"cities":["Melbourne","Sydney"]}`))
	})

	got, err := r.Cities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Melbourne", "Sydney"}, got)
}
