package httpclient

import (
	"context"

	"github.com/wv0m56/http-client/message"
)

// Client is the HTTP client capability. Implementations translate the
// abstract request into their engine's native representation, perform the
// exchange, and translate the result back.
//
// Send must be safe for unlimited concurrent invocations. Errors are
// reported through the unified *Error type; no partial response is ever
// returned alongside an error.
type Client interface {
	Send(ctx context.Context, req *message.Request) (*message.Response, error)
}

// ClientFunc adapts a function to the Client interface.
type ClientFunc func(ctx context.Context, req *message.Request) (*message.Response, error)

// Send calls f.
func (f ClientFunc) Send(ctx context.Context, req *message.Request) (*message.Response, error) {
	return f(ctx, req)
}
