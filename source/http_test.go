package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/specs/merged-primary.spec" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("OBSID STRING None Observation identifier\n"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL+"/specs/", 0)

	body, err := f.Fetch(context.Background(), "merged-primary")
	require.NoError(t, err)
	assert.Equal(t, "OBSID STRING None Observation identifier\n", string(body))
}

func TestHTTPFetcher_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL+"/specs/", 0)

	_, err := f.Fetch(context.Background(), "no-such-file")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "no-such-file.spec", "error names the failed resource")
}

func TestHTTPFetcher_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL+"/specs/", 0)

	_, err := f.Fetch(context.Background(), "merged-primary")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound), "any non-200 status is fatal")
}

func TestHTTPFetcher_ContentSizeLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]byte, 64))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL+"/", 0)
	f.maxContentSize = 16

	_, err := f.Fetch(context.Background(), "huge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}
