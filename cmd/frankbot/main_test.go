package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 2000))
	require.Equal(t, "abc", truncate("abcdef", 3))
	require.Equal(t, "", truncate("", 2000))

	// Rune-aware: multibyte characters are never split.
	emoji := strings.Repeat("✅", 10)
	require.Equal(t, strings.Repeat("✅", 4), truncate(emoji, 4))
}

func TestRelayQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"response": "Current price of BTC: $50,000.00"}`))
	}))
	defer server.Close()

	relay := &relayHandler{apiURL: server.URL, httpClient: &http.Client{Timeout: time.Second}}
	reply, err := relay.query("price of BTC")
	require.NoError(t, err)
	require.Equal(t, "Current price of BTC: $50,000.00", reply)
}

func TestRelayQueryBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "classifier blew up"}`))
	}))
	defer server.Close()

	relay := &relayHandler{apiURL: server.URL, httpClient: &http.Client{Timeout: time.Second}}
	_, err := relay.query("boom")
	require.Error(t, err)
	require.Contains(t, err.Error(), "classifier blew up")
}

func TestRelayQueryUnreachableBackend(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	relay := &relayHandler{apiURL: server.URL, httpClient: &http.Client{Timeout: time.Second}}
	_, err := relay.query("hi")
	require.Error(t, err)
}
