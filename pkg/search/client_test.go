package search

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNormalizeQuery(t *testing.T) {
	t.Run("TrimsWhitespace", func(t *testing.T) {
		got, ok := NormalizeQuery("  cats  ")
		if !ok {
			t.Fatal("NormalizeQuery() ok = false, want true")
		}
		if got != "cats" {
			t.Errorf("NormalizeQuery() = %q, want %q", got, "cats")
		}
	})

	t.Run("RejectsShortQueries", func(t *testing.T) {
		for _, query := range []string{"", " ", "a", "  a  "} {
			if _, ok := NormalizeQuery(query); ok {
				t.Errorf("NormalizeQuery(%q) ok = true, want false", query)
			}
		}
	})

	t.Run("AcceptsMinimumLength", func(t *testing.T) {
		if _, ok := NormalizeQuery("ab"); !ok {
			t.Error("NormalizeQuery(\"ab\") ok = false, want true")
		}
	})

	t.Run("TruncatesLongQueries", func(t *testing.T) {
		long := strings.Repeat("x", 150)
		got, ok := NormalizeQuery(long)
		if !ok {
			t.Fatal("NormalizeQuery() ok = false, want true")
		}
		if len(got) != MaxQueryLength {
			t.Errorf("len = %d, want %d", len(got), MaxQueryLength)
		}
		if got != long[:MaxQueryLength] {
			t.Error("truncated query is not the first 100 characters")
		}
	})

	t.Run("TruncatesByRunes", func(t *testing.T) {
		long := strings.Repeat("ä", 150)
		got, _ := NormalizeQuery(long)
		if runes := []rune(got); len(runes) != MaxQueryLength {
			t.Errorf("rune count = %d, want %d", len(runes), MaxQueryLength)
		}
	})
}

func TestClientSearch(t *testing.T) {
	tenorBody := `{"results":[{"id":"1","content_description":"cat","media_formats":{"gif":{"url":"https://x/a.gif","dims":[100,80]},"tinygif":{"url":"https://x/a-small.gif"}}}]}`

	t.Run("SendsQueryAndLimitParams", func(t *testing.T) {
		var gotQuery, gotLimit string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("q")
			gotLimit = r.URL.Query().Get("limit")
			w.Write([]byte(tenorBody))
		}))
		defer server.Close()

		client := NewClient(ClientOptions{Endpoint: server.URL, Limit: 7, Logger: quietLogger()})
		if _, err := client.Search(context.Background(), "  funny cats  "); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if gotQuery != "funny cats" {
			t.Errorf("q = %q, want %q", gotQuery, "funny cats")
		}
		if gotLimit != "7" {
			t.Errorf("limit = %q, want %q", gotLimit, "7")
		}
	})

	t.Run("ShortQuerySkipsNetwork", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer server.Close()

		client := NewClient(ClientOptions{Endpoint: server.URL, Logger: quietLogger()})
		candidates, err := client.Search(context.Background(), " a ")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if candidates != nil {
			t.Errorf("candidates = %v, want nil", candidates)
		}
		if calls != 0 {
			t.Errorf("endpoint called %d times, want 0", calls)
		}
	})

	t.Run("TruncatesDispatchedQuery", func(t *testing.T) {
		var gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("q")
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		long := strings.Repeat("z", 130)
		client := NewClient(ClientOptions{Endpoint: server.URL, Logger: quietLogger()})
		if _, err := client.Search(context.Background(), long); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if gotQuery != long[:MaxQueryLength] {
			t.Errorf("dispatched query has %d chars, want the first %d", len(gotQuery), MaxQueryLength)
		}
	})

	t.Run("MergesHeadersOverContentType", func(t *testing.T) {
		var gotContentType, gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewClient(ClientOptions{
			Endpoint: server.URL,
			Headers: map[string]string{
				"Authorization": "Bearer token",
				"Content-Type":  "application/vnd.custom+json",
			},
			Logger: quietLogger(),
		})
		if _, err := client.Search(context.Background(), "cats"); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if gotAuth != "Bearer token" {
			t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer token")
		}
		// Configured headers win on collision.
		if gotContentType != "application/vnd.custom+json" {
			t.Errorf("Content-Type = %q, want the configured override", gotContentType)
		}
	})

	t.Run("DefaultContentType", func(t *testing.T) {
		var gotContentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewClient(ClientOptions{Endpoint: server.URL, Logger: quietLogger()})
		if _, err := client.Search(context.Background(), "cats"); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if gotContentType != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", gotContentType)
		}
	})

	t.Run("Non2xxStatusFails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(ClientOptions{Endpoint: server.URL, Logger: quietLogger()})
		_, err := client.Search(context.Background(), "cats")
		var statusErr *StatusError
		if !errors.As(err, &statusErr) {
			t.Fatalf("error = %v, want *StatusError", err)
		}
		if statusErr.Code != http.StatusInternalServerError {
			t.Errorf("Code = %d, want %d", statusErr.Code, http.StatusInternalServerError)
		}
	})

	t.Run("ParserFailureWrapped", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"unexpected":true}`))
		}))
		defer server.Close()

		client := NewClient(ClientOptions{Endpoint: server.URL, Logger: quietLogger()})
		_, err := client.Search(context.Background(), "cats")
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("error = %v, want *ParseError", err)
		}
	})

	t.Run("NoEndpoint", func(t *testing.T) {
		client := NewClient(ClientOptions{Logger: quietLogger()})
		if _, err := client.Search(context.Background(), "cats"); !errors.Is(err, ErrNoEndpoint) {
			t.Errorf("error = %v, want ErrNoEndpoint", err)
		}
	})

	t.Run("CustomParser", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"weird":"shape"}`))
		}))
		defer server.Close()

		parser := ParserFunc(func(raw []byte) ([]Candidate, error) {
			return []Candidate{{ID: "custom", FullURL: "https://x/custom.gif"}}, nil
		})
		client := NewClient(ClientOptions{Endpoint: server.URL, Parser: parser, Logger: quietLogger()})
		candidates, err := client.Search(context.Background(), "cats")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(candidates) != 1 || candidates[0].ID != "custom" {
			t.Errorf("candidates = %v, want the custom parser's result", candidates)
		}
	})

	t.Run("EndpointWithExistingQueryString", func(t *testing.T) {
		var gotQuery, gotKey string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("q")
			gotKey = r.URL.Query().Get("key")
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewClient(ClientOptions{Endpoint: server.URL + "?key=abc", Logger: quietLogger()})
		if _, err := client.Search(context.Background(), "cats"); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if gotKey != "abc" || gotQuery != "cats" {
			t.Errorf("key = %q q = %q, want abc and cats", gotKey, gotQuery)
		}
	})
}
