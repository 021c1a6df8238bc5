// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-18
// Last Modified: 2026-10-18

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestChatClient(t *testing.T, handler http.HandlerFunc) *ChatClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewChatClient(server.URL, "test-token", "test-model")
	c.retryConfig = RetryConfig{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
	return c
}

func TestChatClientComplete(t *testing.T) {
	c := newTestChatClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected Authorization header %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}
		if req.Model != "test-model" || len(req.Messages) != 2 || req.Messages[0].Role != RoleSystem {
			t.Errorf("unexpected request: %+v", req)
		}

		_, _ = io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"  Add reproduction steps.  "}}]}`)
	})

	got, err := c.Complete(context.Background(), ReviewMessages("Crash", "It crashes"))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "Add reproduction steps." {
		t.Errorf("Complete() = %q", got)
	}
}

func TestChatClientEmptyChoices(t *testing.T) {
	c := newTestChatClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"choices":[]}`)
	})

	if _, err := c.Complete(context.Background(), ReviewMessages("t", "b")); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestChatClientRetriesTransientErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestChatClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = io.WriteString(w, `{"error":{"message":"rate limited"}}`)
			return
		}
		_, _ = io.WriteString(w, `{"choices":[{"message":{"content":"ok"}}]}`)
	})

	got, err := c.Complete(context.Background(), ReviewMessages("t", "b"))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "ok" || calls.Load() != 3 {
		t.Errorf("got %q after %d calls", got, calls.Load())
	}
}

func TestChatClientDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestChatClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"message":"invalid token"}}`)
	})

	_, err := c.Complete(context.Background(), ReviewMessages("t", "b"))
	var serr *StatusError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if serr.Code != http.StatusUnauthorized || serr.Message != "invalid token" {
		t.Errorf("unexpected status error: %+v", serr)
	}
	if calls.Load() != 1 {
		t.Errorf("expected 1 call, got %d", calls.Load())
	}
}

func TestChatClientRequiresKey(t *testing.T) {
	c := NewChatClient("http://127.0.0.1:0", "", "m")
	if _, err := c.Complete(context.Background(), nil); err == nil {
		t.Fatal("expected error without API key")
	}
}
