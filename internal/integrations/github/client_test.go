// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(context.Background(), "test-token").WithBaseURL(server.URL)
	if err != nil {
		t.Fatalf("WithBaseURL: %v", err)
	}
	return client
}

func TestCreateCommentValidation(t *testing.T) {
	// Test that CreateComment rejects empty body
	client := &Client{client: nil} // nil client for validation testing

	err := client.CreateComment(context.Background(), "org", "repo", 1, "")
	if err == nil {
		t.Error("Expected error for empty comment body")
	}

	err = client.CreateComment(context.Background(), "org", "repo", 1, "   ")
	if err == nil {
		t.Error("Expected error for whitespace-only comment body")
	}
}

func TestGetIssue(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/jeff/foo/issues/7", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Expected bearer token, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"number": 7,
			"title": "Crash on start",
			"body": "It crashes.",
			"state": "open",
			"html_url": "https://github.com/jeff/foo/issues/7",
			"user": {"login": "jeff"},
			"labels": [{"name": "bug"}, {"name": "ui"}]
		}`)
	})

	client := newTestClient(t, mux)
	issue, err := client.GetIssue(context.Background(), "jeff", "foo", 7)
	if err != nil {
		t.Fatalf("GetIssue: %v", err)
	}
	if issue.GetTitle() != "Crash on start" || issue.GetUser().GetLogin() != "jeff" {
		t.Errorf("Unexpected issue: %+v", issue)
	}
	if got := LabelNames(issue); !reflect.DeepEqual(got, []string{"bug", "ui"}) {
		t.Errorf("LabelNames() = %v", got)
	}
}

func TestGetIssueNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/jeff/foo/issues/404", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	})

	client := newTestClient(t, mux)
	if _, err := client.GetIssue(context.Background(), "jeff", "foo", 404); err == nil {
		t.Fatal("Expected error for missing issue")
	}
}

func TestCreateComment(t *testing.T) {
	var posted string
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/jeff/foo/issues/7/comments", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		var body struct {
			Body string `json:"body"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		posted = body.Body
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id": 1}`)
	})

	client := newTestClient(t, mux)
	if err := client.CreateComment(context.Background(), "jeff", "foo", 7, "@jeff add steps"); err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if posted != "@jeff add steps" {
		t.Errorf("Posted body = %q", posted)
	}
}

func TestGetFileContent(t *testing.T) {
	content := "author:jeff\nlabel:wontfix\n"
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/org/shared/contents/ignore.ghiqc", func(w http.ResponseWriter, r *http.Request) {
		if ref := r.URL.Query().Get("ref"); ref != "main" {
			t.Errorf("Expected ref=main, got %q", ref)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"type":     "file",
			"encoding": "base64",
			"path":     "ignore.ghiqc",
			"content":  base64.StdEncoding.EncodeToString([]byte(content)),
		})
	})

	client := newTestClient(t, mux)
	data, err := client.GetFileContent(context.Background(), "org", "shared", "ignore.ghiqc", "main")
	if err != nil {
		t.Fatalf("GetFileContent: %v", err)
	}
	if string(data) != content {
		t.Errorf("Content = %q, want %q", data, content)
	}
}

func TestParseRepo(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		shouldFail bool
	}{
		{"valid format", "owner/repo", false},
		{"missing slash", "ownerrepo", true},
		{"empty owner", "/repo", true},
		{"empty repo", "owner/", true},
		{"empty string", "", true},
		{"too many slashes", "owner/repo/extra", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := ParseRepo(tt.input)
			if tt.shouldFail {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if owner != "owner" || repo != "repo" {
				t.Errorf("Got %q/%q", owner, repo)
			}
		})
	}
}
