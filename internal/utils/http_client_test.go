package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 3*time.Second)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil client with embedded resty client")
	}
	if client.BaseURL != "http://localhost:8080" {
		t.Errorf("expected base URL http://localhost:8080, got %s", client.BaseURL)
	}
	if got := client.Header.Get("Accept"); got != "application/json" {
		t.Errorf("expected Accept application/json, got %q", got)
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", client.GetClient().Timeout)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	c1 := NewHTTPClient("http://a", 0)
	c2 := NewHTTPClient("http://b", 0)

	if c1.Client == c2.Client {
		t.Fatal("expected distinct resty clients")
	}

	c1.SetHeader("X-Test", "1")
	if c2.Header.Get("X-Test") != "" {
		t.Error("headers must not leak between clients")
	}
}
