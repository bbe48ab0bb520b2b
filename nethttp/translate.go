package nethttp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"

	"golang.org/x/net/http/httpguts"

	httpclient "github.com/wv0m56/http-client"
	"github.com/wv0m56/http-client/message"
	"github.com/wv0m56/http-client/version"
)

// toNative builds the engine's native request from req. The scheme is
// checked before any network activity: anything other than http or https
// fails with a client error and the engine never sees the request.
func toNative(ctx context.Context, req *message.Request, defaults map[string]string) (*http.Request, error) {
	if req == nil || req.URL == nil {
		return nil, httpclient.NewSchemeError("")
	}
	switch req.URL.Scheme {
	case "http", "https":
	default:
		return nil, httpclient.NewSchemeError(req.URL.Scheme)
	}

	body, err := req.BodyBytes()
	if err != nil {
		return nil, httpclient.NewBodyReadError(err)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	native := &http.Request{
		Method:     method,
		URL:        req.URL,
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     make(http.Header, req.Header.Len()),
		Host:       req.URL.Host,
	}
	// A requested protocol version is advisory: the engine negotiates the
	// actual version, so an unparsable value falls back to the default.
	if req.Proto != "" {
		if major, minor, ok := http.ParseHTTPVersion(req.Proto); ok {
			native.Proto = req.Proto
			native.ProtoMajor = major
			native.ProtoMinor = minor
		}
	}
	native = native.WithContext(ctx)

	if len(body) > 0 || req.HasBody() {
		native.Body = io.NopCloser(bytes.NewReader(body))
		native.ContentLength = int64(len(body))
		native.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
	}

	// Headers cross byte for byte, in order, with append semantics.
	// Names or values net/http cannot represent are reported instead of
	// silently dropped.
	var headerErr error
	req.Header.Each(func(name, value string) bool {
		if !httpguts.ValidHeaderFieldName(name) {
			headerErr = httpclient.NewHeaderError(name, fmt.Errorf("invalid header name"))
			return false
		}
		if !httpguts.ValidHeaderFieldValue(value) {
			headerErr = httpclient.NewHeaderError(name, fmt.Errorf("invalid header value"))
			return false
		}
		native.Header.Add(name, value)
		return true
	})
	if headerErr != nil {
		return nil, headerErr
	}

	// Configured defaults cross under the same validation as caller
	// headers; a bad configured value is reported, not silently dropped.
	for name, value := range defaults {
		if native.Header.Values(name) != nil {
			continue
		}
		if !httpguts.ValidHeaderFieldName(name) {
			return nil, httpclient.NewHeaderError(name, fmt.Errorf("invalid header name"))
		}
		if !httpguts.ValidHeaderFieldValue(value) {
			return nil, httpclient.NewHeaderError(name, fmt.Errorf("invalid header value"))
		}
		native.Header.Set(name, value)
	}
	if native.Header.Values("User-Agent") == nil {
		native.Header.Set("User-Agent", version.UserAgent())
	}

	return native, nil
}

// fromNative translates the engine's native response. The body is read
// to completion so the caller holds the complete payload and the
// underlying connection can be reused.
func fromNative(resp *http.Response) (*message.Response, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, httpclient.NewGatewayError(err)
	}

	out := message.NewResponse(resp.StatusCode)
	out.Proto = resp.Proto
	out.Body = body

	// net/http does not preserve wire order across names, so names are
	// copied in sorted order. Value order within a name is preserved.
	names := make([]string, 0, len(resp.Header))
	for name := range resp.Header {
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, value := range resp.Header[name] {
			out.Header.Add(name, value)
		}
	}

	return out, nil
}
