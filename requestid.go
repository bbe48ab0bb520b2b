package httpclient

import (
	"context"

	"github.com/google/uuid"

	"github.com/wv0m56/http-client/message"
)

// RequestIDHeader is the header carrying the per-request correlation id.
const RequestIDHeader = "X-Request-Id"

// WithRequestID returns a Middleware that stamps each outgoing request
// with a fresh UUID under X-Request-Id. A caller-supplied id is kept.
func WithRequestID() Middleware {
	return func(inner Client) Client {
		return ClientFunc(func(ctx context.Context, req *message.Request) (*message.Response, error) {
			if req.Header == nil {
				req.Header = message.NewHeader()
			}
			if !req.Header.Has(RequestIDHeader) {
				req.Header.Set(RequestIDHeader, uuid.NewString())
			}
			return inner.Send(ctx, req)
		})
	}
}
