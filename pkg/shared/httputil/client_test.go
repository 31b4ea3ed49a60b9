package httputil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPostJSONSendsHeadersAndBody(t *testing.T) {
	var gotContentType, gotCustom string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotCustom = r.Header.Get("X-Test")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode: %v", err)
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	data, status, err := PostJSON(context.Background(), server.URL, map[string]string{"X-Test": "yes"}, map[string]string{"q": "hello"}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d", status)
	}
	if gotContentType != "application/json" || gotCustom != "yes" {
		t.Fatalf("headers not sent: %q %q", gotContentType, gotCustom)
	}
	if gotBody["q"] != "hello" {
		t.Fatalf("body not sent: %#v", gotBody)
	}
	if !strings.Contains(string(data), "ok") {
		t.Fatalf("unexpected response: %s", data)
	}
}

func TestPostJSONNon2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer server.Close()

	_, status, err := PostJSON(context.Background(), server.URL, nil, map[string]string{}, 5)
	if err == nil || !strings.Contains(err.Error(), "http 403") {
		t.Fatalf("expected http 403 error, got %v", err)
	}
	if status != http.StatusForbidden {
		t.Fatalf("unexpected status: %d", status)
	}
}
