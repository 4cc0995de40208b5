package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPClient_RequestDecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != "/venues/search" {
			t.Errorf("expected path /venues/search; got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)

	var response struct {
		Status string `json:"status"`
	}
	err := client.Request(context.Background(), "GET", "/venues/search", nil, nil, &response)
	if err != nil {
		t.Fatal(err)
	}
	if response.Status != "OK" {
		t.Errorf("Status = %q; want OK", response.Status)
	}
}

func TestHTTPClient_RequestSendsHeadersAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Api-Key"); got != "secret" {
			t.Errorf("X-Api-Key = %q; want secret", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q; want application/json", got)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	err := client.Request(context.Background(), "POST", "/venues", map[string]string{"X-Api-Key": "secret"}, map[string]string{"q": "bar"}, nil)
	if err != nil {
		t.Fatal(err)
	}
}

func TestHTTPClient_RequestNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	err := client.Request(context.Background(), "GET", "/venues", nil, nil, nil)
	if err == nil {
		t.Fatal("expected error for non-2xx status, got nil")
	}
}
