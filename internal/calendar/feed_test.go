package calendar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/feed.ics", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/calendar")
		_, _ = w.Write([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"))
	})
	mux.HandleFunc("/old.ics", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/feed.ics", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/broken.ics", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		body, err := NewHTTPFetcher(srv.URL+"/feed.ics", time.Second).Fetch(ctx)
		require.NoError(t, err)
		assert.Contains(t, string(body), "BEGIN:VCALENDAR")
	})

	t.Run("follows redirects", func(t *testing.T) {
		body, err := NewHTTPFetcher(srv.URL+"/old.ics", time.Second).Fetch(ctx)
		require.NoError(t, err)
		assert.Contains(t, string(body), "END:VCALENDAR")
	})

	t.Run("non-2xx", func(t *testing.T) {
		_, err := NewHTTPFetcher(srv.URL+"/broken.ics", time.Second).Fetch(ctx)
		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
		assert.EqualError(t, err, "unexpected status 503")
	})
}
