package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_DefaultHeaders(t *testing.T) {
	var userAgent, accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		accept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient().R().Get(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode())
	}
	if userAgent != UserAgent {
		t.Errorf("expected User-Agent %q, got %q", UserAgent, userAgent)
	}
	if accept != "application/json" {
		t.Errorf("expected Accept application/json, got %q", accept)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	client1.SetHeader("apikey", "one")

	if client1.Client == client2.Client {
		t.Fatal("expected different *resty.Client instances")
	}
	if client2.Header.Get("apikey") != "" {
		t.Error("expected headers not to leak between clients")
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: " https://project.example.co/ ", want: "https://project.example.co"},
		{in: "https://example.com/functions/v1/manage", want: "https://example.com/functions/v1/manage"},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := NormalizeBaseURL(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeBaseURL(%q): expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeBaseURL(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeBaseURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewBaseURLClient(t *testing.T) {
	client, err := NewBaseURLClient("example.com/", 3*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.BaseURL != "http://example.com" {
		t.Errorf("expected base url http://example.com, got %s", client.BaseURL)
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", client.GetClient().Timeout)
	}
}

func TestNewBaseURLClient_Empty(t *testing.T) {
	if _, err := NewBaseURLClient("", time.Second); err == nil {
		t.Fatal("expected error for empty address")
	}
}
