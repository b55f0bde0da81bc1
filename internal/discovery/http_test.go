package discovery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPDiscoverer_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"title":"STEM Grant","provider":"Acme","type":"scholarship","link":"https://acme.example"},
			{"title":"Intern 2026","provider":"Beta","type":"internship"}
		]`))
	}))
	defer srv.Close()

	d := NewHTTPDiscoverer(srv.URL)
	results, err := d.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "STEM Grant", results[0].Title)
	assert.Equal(t, "https://acme.example", results[0].Link)
	assert.Equal(t, "internship", results[1].Type)
}

func TestHTTPDiscoverer_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPDiscoverer(srv.URL).Discover(context.Background())
	assert.Error(t, err)
}

func TestHTTPDiscoverer_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewHTTPDiscoverer(srv.URL).Discover(context.Background())
	assert.Error(t, err)
}

func TestHTTPDiscoverer_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPDiscoverer(srv.URL).Discover(ctx)
	assert.Error(t, err)
}
