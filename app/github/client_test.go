package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFindRepo(t *testing.T) {
	var receivedQuery, receivedAccept, receivedAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/repositories" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		receivedQuery = r.URL.Query().Get("q")
		receivedAccept = r.Header.Get("Accept")
		receivedAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"full_name":"example/transformers","html_url":"https://github.com/example/transformers"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "test-token", 5)

	repo := client.FindRepo(context.Background(), "Transformers Explained In Depth")

	if repo != "https://github.com/example/transformers" {
		t.Errorf("Expected top result URL, got: %q", repo)
	}
	if receivedQuery != "Transformers" {
		t.Errorf("Expected first-word search term 'Transformers', got: %q", receivedQuery)
	}
	if receivedAccept != "application/vnd.github+json" {
		t.Errorf("Expected GitHub Accept header, got: %q", receivedAccept)
	}
	if receivedAuth != "Bearer test-token" {
		t.Errorf("Expected bearer token header, got: %q", receivedAuth)
	}
}

func TestFindRepoNoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("Expected no Authorization header, got: %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`{"items":[{"html_url":"https://github.com/example/repo"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "", 5)

	if repo := client.FindRepo(context.Background(), "Headline"); repo != "https://github.com/example/repo" {
		t.Errorf("Expected repo URL, got: %q", repo)
	}
}

func TestFindRepoEmptyHeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Expected no request for an empty headline")
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "", 5)

	for _, headline := range []string{"", "   ", "\t\n"} {
		if repo := client.FindRepo(context.Background(), headline); repo != NoRepoFound {
			t.Errorf("Expected %q for headline %q, got: %q", NoRepoFound, headline, repo)
		}
	}
}

func TestFindRepoFailurePaths(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"non-200 status",
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
		},
		{
			"malformed JSON",
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"items": [`))
			},
		},
		{
			"empty result set",
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"items":[]}`))
			},
		},
		{
			"result without URL",
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"items":[{"full_name":"example/repo"}]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.Client(), server.URL, "", 5)

			if repo := client.FindRepo(context.Background(), "Headline words"); repo != NoRepoFound {
				t.Errorf("Expected %q, got: %q", NoRepoFound, repo)
			}
		})
	}
}

func TestFindRepoNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(&http.Client{}, server.URL, "", 5)

	if repo := client.FindRepo(context.Background(), "Headline"); repo != NoRepoFound {
		t.Errorf("Expected %q on network failure, got: %q", NoRepoFound, repo)
	}
}

func TestFindRepoTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		server.Close()
	}()

	client := &Client{
		httpClient: server.Client(),
		baseURL:    server.URL,
		timeout:    50 * time.Millisecond,
	}

	if repo := client.FindRepo(context.Background(), "Headline"); repo != NoRepoFound {
		t.Errorf("Expected %q on timeout, got: %q", NoRepoFound, repo)
	}
}

func TestFirstWord(t *testing.T) {
	tests := []struct {
		headline string
		expected string
	}{
		{"Transformers Explained", "Transformers"},
		{"  padded   headline  ", "padded"},
		{"single", "single"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := firstWord(tt.headline); got != tt.expected {
			t.Errorf("firstWord(%q): expected %q, got: %q", tt.headline, tt.expected, got)
		}
	}
}
