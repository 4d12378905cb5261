package requests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLimiter struct {
	calls atomic.Int32
	err   error
}

func (l *countingLimiter) Wait(ctx context.Context) error {
	l.calls.Add(1)
	return l.err
}

// Helper to create a client pointing to a test server, the host becomes the first path segment.
func newTestClient(server *httptest.Server, apiKey string, limiter Limiter) *Client {
	return NewClient(&ClientDeps{
		ApiKey:    apiKey,
		URLFormat: server.URL + "/%s",
		Timeout:   time.Second,
		Limiter:   limiter,
	})
}

func TestAuthGetSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/euw1/lol/status/v4/platform-data", r.URL.Path)
		assert.Equal(t, "RGAPI-key", r.Header.Get("X-Riot-Token"))
		w.Write([]byte(`{"id":"EUW1"}`))
	}))
	defer server.Close()

	limiter := &countingLimiter{}
	client := newTestClient(server, "RGAPI-key", limiter)

	var out map[string]string
	err := client.AuthGet(context.Background(), "euw1", "/lol/status/v4/platform-data", &out)

	require.NoError(t, err)
	assert.Equal(t, "EUW1", out["id"])
	assert.Equal(t, int32(1), limiter.calls.Load())
}

// A missing key must fail without any network call.
func TestAuthGetMissingKey(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	limiter := &countingLimiter{}
	client := newTestClient(server, "", limiter)

	err := client.AuthGet(context.Background(), "euw1", "/any", nil)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, int32(0), hits.Load())
	assert.Equal(t, int32(0), limiter.calls.Load())
}

// Status and body are kept verbatim.
func TestAuthGetUpstreamError(t *testing.T) {
	body := `{"status":{"message":"Forbidden","status_code":403}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := newTestClient(server, "RGAPI-key", nil)
	err := client.AuthGet(context.Background(), "euw1", "/any", nil)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusForbidden, upstreamErr.StatusCode)
	assert.Equal(t, body, string(upstreamErr.Body))
	assert.Equal(t, json.RawMessage(body), upstreamErr.Details())
	assert.True(t, IsStatus(err, http.StatusNotFound, http.StatusForbidden))
	assert.False(t, IsStatus(err, http.StatusNotFound))
}

func TestUpstreamErrorPlainBody(t *testing.T) {
	err := &UpstreamError{StatusCode: 502, Body: []byte("Bad Gateway")}
	assert.Equal(t, "Bad Gateway", err.Details())
}

func TestGetTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL + "/api/versions.json"
	server.Close()

	client := NewClient(&ClientDeps{Timeout: time.Second})
	err := client.Get(context.Background(), url, nil)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.False(t, IsStatus(err, 500))
}

// A call slower than the timeout is a transport failure.
func TestGetTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(&ClientDeps{Timeout: 50 * time.Millisecond})
	err := client.Get(context.Background(), server.URL, nil)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestGetInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(&ClientDeps{Timeout: time.Second})
	var out []string
	err := client.Get(context.Background(), server.URL, &out)

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestAuthGetLimiterError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no call expected")
	}))
	defer server.Close()

	client := newTestClient(server, "RGAPI-key", &countingLimiter{err: context.Canceled})
	err := client.AuthGet(context.Background(), "euw1", "/any", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
