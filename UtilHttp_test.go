package krakenapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewHttpRequest_BodyOnAnyStatus(t *testing.T) {
	var server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":["EGeneral:Internal error"]}`))
	}))
	defer server.Close()

	body, err := NewHttpRequest(&http.Client{}, http.MethodGet, server.URL, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != `{"error":["EGeneral:Internal error"]}` {
		t.Errorf("body not returned verbatim: %s", string(body))
	}
}

func TestNewHttpRequest_HeadersApplied(t *testing.T) {
	var gotKey, gotAgent string
	var server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("API-Key")
		gotAgent = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	_, err := NewHttpRequest(&http.Client{}, http.MethodPost, server.URL, "nonce=1",
		map[string]string{"API-Key": "the-key"})
	if err != nil {
		t.Fatal(err)
	}
	if gotKey != "the-key" {
		t.Errorf("request header lost: %q", gotKey)
	}
	if gotAgent == "" {
		t.Error("default user agent not set")
	}
}

func TestNewHttpRequest_ConnectionFailure(t *testing.T) {
	var server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := NewHttpRequest(&http.Client{}, http.MethodGet, server.URL, "", nil)
	if err == nil {
		t.Fatal("expected a transport error")
	}
	var transErr *TransportError
	if !errors.As(err, &transErr) {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}
	if transErr.Unwrap() == nil {
		t.Error("the underlying cause must be kept for diagnostics")
	}
}
