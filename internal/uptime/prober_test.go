package uptime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProber_Probe(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	mux.HandleFunc("/down", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusServiceUnavailable) })
	mux.HandleFunc("/moved", func(w http.ResponseWriter, r *http.Request) { http.Redirect(w, r, "/ok", http.StatusFound) })
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewHTTPProber(200 * time.Millisecond)
	ctx := context.Background()

	t.Run("2xx is ok", func(t *testing.T) {
		res := p.Probe(ctx, srv.URL+"/ok")
		assert.True(t, res.OK)
		require.NotNil(t, res.HTTPStatus)
		assert.Equal(t, http.StatusNoContent, *res.HTTPStatus)
		assert.NoError(t, res.Err)
	})

	t.Run("redirect is followed", func(t *testing.T) {
		res := p.Probe(ctx, srv.URL+"/moved")
		assert.True(t, res.OK)
		assert.Equal(t, http.StatusNoContent, *res.HTTPStatus)
	})

	t.Run("non-2xx keeps status", func(t *testing.T) {
		res := p.Probe(ctx, srv.URL+"/down")
		assert.False(t, res.OK)
		require.NotNil(t, res.HTTPStatus)
		assert.Equal(t, http.StatusServiceUnavailable, *res.HTTPStatus)
	})

	t.Run("timeout has no status", func(t *testing.T) {
		start := time.Now()
		res := p.Probe(ctx, srv.URL+"/slow")
		assert.False(t, res.OK)
		assert.Nil(t, res.HTTPStatus)
		assert.Error(t, res.Err)
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("connection failure has no status", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		url := dead.URL
		dead.Close()

		res := p.Probe(ctx, url)
		assert.False(t, res.OK)
		assert.Nil(t, res.HTTPStatus)
		assert.Error(t, res.Err)
	})

	t.Run("caller cancellation does not abort the probe", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		res := p.Probe(cctx, srv.URL+"/ok")
		assert.True(t, res.OK)
	})

	t.Run("invalid url", func(t *testing.T) {
		res := p.Probe(ctx, "://nope")
		assert.False(t, res.OK)
		assert.Nil(t, res.HTTPStatus)
		assert.Error(t, res.Err)
	})
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	m.ObserveSweep("run")
	m.ObserveSweep("skipped")
	m.ObserveSweep("skipped")
	m.ObserveProbe("qc-ical", true, 120*time.Millisecond)
	m.ObserveProbe("qc-ical", false, 8*time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.sweeps.WithLabelValues("run")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.sweeps.WithLabelValues("skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.probes.WithLabelValues("qc-ical", "false")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.probeDuration))

	_, err = NewMetrics(reg)
	assert.Error(t, err, "second registration on the same registry must fail")

	var nilMetrics *Metrics
	assert.NotPanics(t, func() {
		nilMetrics.ObserveSweep("run")
		nilMetrics.ObserveProbe("x", true, time.Second)
	})
}
