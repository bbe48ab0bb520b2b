package nethttp

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	httpclient "github.com/wv0m56/http-client"
	"github.com/wv0m56/http-client/message"
)

func TestToNative_Defaults(t *testing.T) {
	req, err := message.NewRequest("", "http://example.com/path?q=1")
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	native, err := toNative(context.Background(), req, nil)
	if err != nil {
		t.Fatalf("toNative: %v", err)
	}
	if native.Method != http.MethodGet {
		t.Errorf("method = %q, want GET", native.Method)
	}
	if native.URL.String() != "http://example.com/path?q=1" {
		t.Errorf("url = %q", native.URL.String())
	}
	if native.Body != nil {
		t.Error("bodyless request should have nil native body")
	}
}

func TestToNative_Body(t *testing.T) {
	req, err := message.NewRequest(http.MethodPost, "http://example.com/")
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	req.SetBody(strings.NewReader("payload"))

	native, err := toNative(context.Background(), req, nil)
	if err != nil {
		t.Fatalf("toNative: %v", err)
	}
	if native.ContentLength != int64(len("payload")) {
		t.Errorf("ContentLength = %d, want %d", native.ContentLength, len("payload"))
	}
	got, _ := io.ReadAll(native.Body)
	if string(got) != "payload" {
		t.Errorf("body = %q, want %q", got, "payload")
	}
	// GetBody supports engine-level redirects and re-sends.
	rc, err := native.GetBody()
	if err != nil {
		t.Fatalf("GetBody: %v", err)
	}
	again, _ := io.ReadAll(rc)
	if string(again) != "payload" {
		t.Errorf("GetBody = %q, want %q", again, "payload")
	}
}

func TestToNative_MissingScheme(t *testing.T) {
	req, err := message.NewRequest(http.MethodGet, "example.com/x")
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	_, err = toNative(context.Background(), req, nil)
	if !httpclient.IsScheme(err) {
		t.Fatalf("got %v, want scheme error", err)
	}
}

func TestToNative_InvalidHeader(t *testing.T) {
	tests := []struct {
		name        string
		headerName  string
		headerValue string
	}{
		{"bad name", "X Spaced", "v"},
		{"newline in value", "X-Test", "a\r\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := message.NewRequest(http.MethodGet, "http://example.com/")
			if err != nil {
				t.Fatalf("NewRequest: %v", err)
			}
			req.Header.Add(tt.headerName, tt.headerValue)
			_, err = toNative(context.Background(), req, nil)
			if !httpclient.IsHeader(err) {
				t.Fatalf("got %v, want header error", err)
			}
		})
	}
}

func TestToNative_InvalidDefaultHeader(t *testing.T) {
	tests := []struct {
		name     string
		defaults map[string]string
	}{
		{"bad name", map[string]string{"X Spaced": "v"}},
		{"bad value", map[string]string{"X-Default": "a\nb"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := message.NewRequest(http.MethodGet, "http://example.com/")
			if err != nil {
				t.Fatalf("NewRequest: %v", err)
			}
			_, err = toNative(context.Background(), req, tt.defaults)
			if !httpclient.IsHeader(err) {
				t.Fatalf("got %v, want header error", err)
			}
		})
	}
}

func TestFromNative_HeaderOrder(t *testing.T) {
	native := &http.Response{
		StatusCode: http.StatusOK,
		Proto:      "HTTP/1.1",
		Header: http.Header{
			"Zeta":  {"z"},
			"Alpha": {"a1", "a2"},
			"":      {"dropped"},
		},
		Body: io.NopCloser(strings.NewReader("ok")),
	}
	resp, err := fromNative(native)
	if err != nil {
		t.Fatalf("fromNative: %v", err)
	}
	if diff := cmp.Diff([]string{"Alpha", "Zeta"}, resp.Header.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a1", "a2"}, resp.Header.Values("Alpha")); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if resp.Proto != "HTTP/1.1" {
		t.Errorf("proto = %q", resp.Proto)
	}
	if resp.BodyString() != "ok" {
		t.Errorf("body = %q", resp.BodyString())
	}
}
