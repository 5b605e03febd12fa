package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wordfield/wordfield/pkg/cache"
	wferrors "github.com/wordfield/wordfield/pkg/errors"
)

func TestNewClientDefaults(t *testing.T) {
	client := NewClient()

	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
	if client.cache == nil {
		t.Error("NewClient() cache is nil")
	}
	if client.keyer == nil {
		t.Error("NewClient() keyer is nil")
	}
	if client.ttl != DefaultTTL {
		t.Errorf("NewClient() ttl = %v, want %v", client.ttl, DefaultTTL)
	}
}

func TestFetchText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Write([]byte("the quick brown fox"))
	}))
	defer server.Close()

	client := NewClient(WithHTTPClient(server.Client()))

	body, err := client.FetchText(context.Background(), server.URL, false)
	if err != nil {
		t.Fatalf("FetchText() error: %v", err)
	}
	if string(body) != "the quick brown fox" {
		t.Errorf("FetchText() body = %q", body)
	}
}

func TestFetchTextHeaders(t *testing.T) {
	var received string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Header.Get("User-Agent")
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewClient(
		WithHTTPClient(server.Client()),
		WithHeaders(map[string]string{"User-Agent": "wordfield-test"}),
	)

	if _, err := client.FetchText(context.Background(), server.URL, false); err != nil {
		t.Fatalf("FetchText() error: %v", err)
	}
	if received != "wordfield-test" {
		t.Errorf("User-Agent = %q, want %q", received, "wordfield-test")
	}
}

func TestFetchTextCaching(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("body"))
	}))
	defer server.Close()

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer fc.Close()

	client := NewClient(
		WithHTTPClient(server.Client()),
		WithCache(fc, cache.NewDefaultKeyer()),
		WithTTL(time.Hour),
	)

	ctx := context.Background()
	if _, err := client.FetchText(ctx, server.URL, false); err != nil {
		t.Fatalf("first FetchText() error: %v", err)
	}
	if _, err := client.FetchText(ctx, server.URL, false); err != nil {
		t.Fatalf("second FetchText() error: %v", err)
	}
	if calls != 1 {
		t.Errorf("second fetch should hit the cache, got %d server calls", calls)
	}

	// refresh bypasses the cache
	if _, err := client.FetchText(ctx, server.URL, true); err != nil {
		t.Fatalf("refresh FetchText() error: %v", err)
	}
	if calls != 2 {
		t.Errorf("refresh should bypass the cache, got %d server calls", calls)
	}
}

func TestFetchTextNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(WithHTTPClient(server.Client()))

	_, err := client.FetchText(context.Background(), server.URL, false)
	if !errors.Is(err, cache.ErrNotFound) {
		t.Errorf("FetchText() error = %v, want ErrNotFound", err)
	}
}

func TestFetchTextInvalidURL(t *testing.T) {
	client := NewClient()

	_, err := client.FetchText(context.Background(), "not a url", false)
	if err == nil {
		t.Fatal("FetchText() should reject an invalid URL")
	}
	if wferrors.GetCode(err) != wferrors.ErrCodeInvalidInput {
		t.Errorf("FetchText() error code = %v", wferrors.GetCode(err))
	}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		name      string
		code      int
		wantErr   bool
		retryable bool
	}{
		{"ok", http.StatusOK, false, false},
		{"not found", http.StatusNotFound, true, false},
		{"server error", http.StatusInternalServerError, true, true},
		{"rate limited", http.StatusTooManyRequests, true, true},
		{"forbidden", http.StatusForbidden, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkStatus(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkStatus(%d) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if cache.IsRetryable(err) != tt.retryable {
				t.Errorf("checkStatus(%d) retryable = %v, want %v", tt.code, cache.IsRetryable(err), tt.retryable)
			}
		})
	}
}
