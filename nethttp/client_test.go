package nethttp

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	httpclient "github.com/wv0m56/http-client"
	"github.com/wv0m56/http-client/message"
	"github.com/wv0m56/http-client/security"
	"github.com/wv0m56/http-client/security/tlstest"
	"github.com/wv0m56/http-client/version"
)

func TestSend_Echo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Write(body)
	}))
	defer srv.Close()

	req, err := message.NewRequest(http.MethodGet, srv.URL)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	req.SetBodyString("hello")

	resp, err := New().Send(context.Background(), req)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if resp.Status != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.Status)
	}
	if got := resp.BodyString(); got != "hello" {
		t.Errorf("body = %q, want %q", got, "hello")
	}
}

// roundTripFunc lets a test fail if the engine is ever reached.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestSend_SchemeRejectedBeforeNetwork(t *testing.T) {
	reached := false
	engine := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		reached = true
		return nil, errors.New("should not be reached")
	})}
	c := NewWithClient(engine)

	for _, scheme := range []string{"ftp", "file", "gopher"} {
		req, err := message.NewRequest(http.MethodGet, scheme+"://example.com/x")
		if err != nil {
			t.Fatalf("NewRequest(%q): %v", scheme, err)
		}
		_, err = c.Send(context.Background(), req)
		if !httpclient.IsScheme(err) {
			t.Errorf("scheme %q: got %v, want scheme error", scheme, err)
		}
		var ce *httpclient.Error
		if errors.As(err, &ce) && ce.StatusCode != http.StatusBadRequest {
			t.Errorf("scheme %q: status = %d, want 400", scheme, ce.StatusCode)
		}
	}
	if reached {
		t.Error("engine was reached for a rejected scheme")
	}
}

func TestSend_HeaderRoundTrip(t *testing.T) {
	var received []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Header.Values("X-Test")
		w.Header().Add("X-Reply", "one")
		w.Header().Add("X-Reply", "two")
		w.Header().Add("X-Reply", "three")
	}))
	defer srv.Close()

	req, err := message.NewRequest(http.MethodGet, srv.URL)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	req.Header.Add("X-Test", "a")
	req.Header.Add("X-Test", "b")

	resp, err := New().Send(context.Background(), req)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, received); diff != "" {
		t.Errorf("request header values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"one", "two", "three"}, resp.Header.Values("X-Reply")); diff != "" {
		t.Errorf("response header values mismatch (-want +got):\n%s", diff)
	}
}

func TestSend_DrainsFullBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f := w.(http.Flusher)
		for i := 0; i < 5; i++ {
			io.WriteString(w, strings.Repeat("x", 1024))
			f.Flush()
		}
	}))
	defer srv.Close()

	req, err := message.NewRequest(http.MethodGet, srv.URL)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	resp, err := New().Send(context.Background(), req)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if len(resp.Body) != 5*1024 {
		t.Errorf("body length = %d, want %d", len(resp.Body), 5*1024)
	}
}

func TestSend_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // port now refuses connections

	req, err := message.NewRequest(http.MethodGet, url)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	_, err = New().Send(context.Background(), req)
	if !httpclient.IsConnection(err) {
		t.Fatalf("got %v, want connection error", err)
	}
	if !httpclient.IsRetryable(err) {
		t.Error("connection error should be retryable")
	}
}

func TestSend_ContextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	req, err := message.NewRequest(http.MethodGet, srv.URL)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = New().Send(ctx, req)
	if !httpclient.IsTimeout(err) {
		t.Fatalf("got %v, want timeout error", err)
	}
}

func TestSend_GatewayErrorOnTruncatedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hj := w.(http.Hijacker)
		conn, _, err := hj.Hijack()
		if err != nil {
			t.Errorf("hijack: %v", err)
			return
		}
		io.WriteString(conn, "HTTP/1.1 200 OK\r\nContent-Length: 100\r\n\r\nshort")
		conn.Close()
	}))
	defer srv.Close()

	req, err := message.NewRequest(http.MethodGet, srv.URL)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	_, err = New().Send(context.Background(), req)
	if !httpclient.IsGateway(err) {
		t.Fatalf("got %v, want gateway error", err)
	}
	if !httpclient.IsRetryable(err) {
		t.Error("gateway error should be retryable")
	}
}

func TestSend_DefaultHeaders(t *testing.T) {
	var auth, accept, ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		accept = r.Header.Get("Accept")
		ua = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	c, err := NewWithConfig(Config{Headers: map[string]string{
		"Authorization": "Bearer default",
		"Accept":        "application/json",
	}})
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}

	req, err := message.NewRequest(http.MethodGet, srv.URL)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	req.Header.Set("Authorization", "Bearer caller")
	if _, err := c.Send(context.Background(), req); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if auth != "Bearer caller" {
		t.Errorf("Authorization = %q, caller value should win", auth)
	}
	if accept != "application/json" {
		t.Errorf("Accept = %q, want default applied", accept)
	}
	if ua != version.UserAgent() {
		t.Errorf("User-Agent = %q, want %q", ua, version.UserAgent())
	}
}

func TestSend_HTTPS(t *testing.T) {
	certs := tlstest.Generate(t)

	srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "secure")
	}))
	srv.TLS = &tls.Config{Certificates: []tls.Certificate{certs.ServerTLS}}
	srv.StartTLS()
	defer srv.Close()

	c, err := NewWithConfig(Config{
		TLS: &security.TLSConfig{CAFile: certs.CAFile},
	})
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	req, err := message.NewRequest(http.MethodGet, srv.URL)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	resp, err := c.Send(context.Background(), req)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got := resp.BodyString(); got != "secure" {
		t.Errorf("body = %q, want %q", got, "secure")
	}
}

func TestSend_SharedEngine(t *testing.T) {
	engine := &http.Client{}
	a := NewWithClient(engine)
	b := NewWithClient(engine)
	if a.Unwrap() != b.Unwrap() {
		t.Error("clients built from the same engine should share it")
	}
}
