package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPaths verifies the detail path templates
func TestPaths(t *testing.T) {
	assert.Equal(t, "/settings/12", SettingPath(12))
	assert.Equal(t, "/games/7", GamePath(7))
}

// TestHTTPFetcher_Fetch verifies the path is joined to the base URL and parsed
func TestHTTPFetcher_Fetch(t *testing.T) {
	var gotPath, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><body><h1>Мафия</h1></body></html>`))
	}))
	defer server.Close()

	f := NewHTTPFetcher(Options{BaseURL: server.URL, UserAgent: "test-agent"})

	doc, err := f.Fetch(context.Background(), GamePath(5))
	require.NoError(t, err)

	assert.Equal(t, "/games/5", gotPath)
	assert.Equal(t, "test-agent", gotAgent)
	assert.Equal(t, "Мафия", doc.Find("h1").Text())
}

// TestHTTPFetcher_Charset verifies non-UTF-8 bodies are decoded
func TestHTTPFetcher_Charset(t *testing.T) {
	// "Мафия" in windows-1251
	body := append([]byte("<html><body><h1>"), 0xcc, 0xe0, 0xf4, 0xe8, 0xff)
	body = append(body, []byte("</h1></body></html>")...)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=windows-1251")
		w.Write(body)
	}))
	defer server.Close()

	f := NewHTTPFetcher(Options{BaseURL: server.URL})

	doc, err := f.Fetch(context.Background(), "/")
	require.NoError(t, err)
	assert.Equal(t, "Мафия", doc.Find("h1").Text())
}

// TestHTTPFetcher_StatusError verifies non-200 responses fail
func TestHTTPFetcher_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	f := NewHTTPFetcher(Options{BaseURL: server.URL})

	doc, err := f.Fetch(context.Background(), SettingPath(1))

	assert.Nil(t, doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "/settings/1")
}

// TestHTTPFetcher_CancelledContext verifies the context aborts the request
func TestHTTPFetcher_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html></html>`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewHTTPFetcher(Options{BaseURL: server.URL})

	_, err := f.Fetch(ctx, GamesPath)
	require.Error(t, err)
}
