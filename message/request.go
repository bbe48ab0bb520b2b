package message

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Request is an engine-agnostic HTTP request. The caller owns it until it
// is handed to a client's Send; translation drains the body.
type Request struct {
	// Method is the HTTP method. Empty means GET.
	Method string
	// URL is the request target.
	URL *url.URL
	// Proto is the requested protocol version (e.g. "HTTP/1.1"). Empty
	// leaves the choice to the engine.
	Proto string
	// Header holds the request headers.
	Header *Header

	body     io.Reader
	bodyBuf  []byte
	buffered bool
}

// NewRequest builds a request from a method and a raw URL. The URL is
// parsed eagerly so a malformed target surfaces here rather than mid-send.
func NewRequest(method, rawURL string) (*Request, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("message: parse url %q: %w", rawURL, err)
	}
	if method == "" {
		method = http.MethodGet
	}
	return &Request{
		Method: method,
		URL:    u,
		Header: NewHeader(),
	}, nil
}

// SetBody sets the request body to an arbitrary byte stream. The stream is
// read once, during translation.
func (r *Request) SetBody(body io.Reader) {
	r.body = body
	r.bodyBuf = nil
	r.buffered = false
}

// SetBodyBytes sets the request body to the given bytes.
func (r *Request) SetBodyBytes(b []byte) {
	r.body = nil
	r.bodyBuf = b
	r.buffered = true
}

// SetBodyString sets the request body to the given string.
func (r *Request) SetBodyString(s string) {
	r.SetBodyBytes([]byte(s))
}

// SetBodyJSON marshals v as the request body and sets Content-Type to
// application/json unless one is already present.
func (r *Request) SetBodyJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("message: encode json body: %w", err)
	}
	r.SetBodyBytes(data)
	if r.Header == nil {
		r.Header = NewHeader()
	}
	if !r.Header.Has("Content-Type") {
		r.Header.Set("Content-Type", "application/json")
	}
	return nil
}

// HasBody reports whether a body has been set.
func (r *Request) HasBody() bool {
	return r.buffered || r.body != nil
}

// BodyBytes drains the body into memory and returns it. The result is
// cached: repeated calls (and re-sends of the same request, e.g. under a
// retry middleware) see the same bytes without re-reading the stream.
func (r *Request) BodyBytes() ([]byte, error) {
	if r.buffered {
		return r.bodyBuf, nil
	}
	if r.body == nil {
		return nil, nil
	}
	data, err := io.ReadAll(r.body)
	if err != nil {
		return nil, fmt.Errorf("message: read request body: %w", err)
	}
	r.bodyBuf = data
	r.body = nil
	r.buffered = true
	return data, nil
}

// Clone returns a copy of the request with its own header. A streaming
// body that has not been drained yet is shared between the two copies;
// buffered bodies are safe to reuse from either.
func (r *Request) Clone() *Request {
	if r == nil {
		return nil
	}
	out := *r
	out.Header = r.Header.Clone()
	if r.URL != nil {
		u := *r.URL
		out.URL = &u
	}
	return &out
}

// String describes the request for logs.
func (r *Request) String() string {
	var b strings.Builder
	b.WriteString(r.Method)
	b.WriteByte(' ')
	if r.URL != nil {
		b.WriteString(r.URL.String())
	}
	return b.String()
}

var _ fmt.Stringer = (*Request)(nil)
