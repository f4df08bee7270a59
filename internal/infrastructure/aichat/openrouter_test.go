package aichat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestService_Complete(t *testing.T) {
	var captured chatRequest
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("unexpected authorization %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("HTTP-Referer") != "https://example.com" {
			t.Errorf("unexpected referer %q", r.Header.Get("HTTP-Referer"))
		}
		if r.Header.Get("X-Title") != "Voice Assistant" {
			t.Errorf("unexpected title %q", r.Header.Get("X-Title"))
		}

		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		fmt.Fprint(w, `{"choices": [{"message": {"content": "assistant reply"}}]}`)
	}))
	defer upstream.Close()

	svc := NewService("test-key", "https://example.com", "Voice Assistant", upstream.URL)
	reply, err := svc.Complete(context.Background(), "hello", "")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if reply != "assistant reply" {
		t.Errorf("unexpected reply %q", reply)
	}

	if captured.Model != model {
		t.Errorf("unexpected model %q", captured.Model)
	}
	if len(captured.Messages) != 1 || captured.Messages[0].Role != "user" {
		t.Fatalf("unexpected messages %+v", captured.Messages)
	}
	parts := captured.Messages[0].Content
	if len(parts) != 1 || parts[0].Type != "text" || parts[0].Text != "hello" {
		t.Errorf("unexpected content parts %+v", parts)
	}
}

func TestService_Complete_WithImage(t *testing.T) {
	var captured chatRequest
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		fmt.Fprint(w, `{"choices": [{"message": {"content": "a cat"}}]}`)
	}))
	defer upstream.Close()

	svc := NewService("test-key", "https://example.com", "Voice Assistant", upstream.URL)
	reply, err := svc.Complete(context.Background(), "describe this", "https://example.com/cat.png")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if reply != "a cat" {
		t.Errorf("unexpected reply %q", reply)
	}

	parts := captured.Messages[0].Content
	if len(parts) != 2 {
		t.Fatalf("expected text and image parts, got %d", len(parts))
	}
	if parts[1].Type != "image_url" || parts[1].ImageURL == nil || parts[1].ImageURL.URL != "https://example.com/cat.png" {
		t.Errorf("unexpected image part %+v", parts[1])
	}
}

func TestService_Complete_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	svc := NewService("test-key", "https://example.com", "Voice Assistant", upstream.URL)
	if _, err := svc.Complete(context.Background(), "hello", ""); err == nil {
		t.Error("expected error for upstream failure")
	}
}

func TestService_Complete_EmptyChoices(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices": []}`)
	}))
	defer upstream.Close()

	svc := NewService("test-key", "https://example.com", "Voice Assistant", upstream.URL)
	if _, err := svc.Complete(context.Background(), "hello", ""); err == nil {
		t.Error("expected error for empty choices")
	}
}
