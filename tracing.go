package httpclient

import (
	"context"
	"errors"

	"github.com/wv0m56/http-client/message"
	"github.com/wv0m56/http-client/observability"
)

// WithTracing returns a Middleware that creates an OpenTelemetry span
// around each Send, recording method, URL, and the resulting status or
// error code.
func WithTracing() Middleware {
	return func(inner Client) Client {
		return ClientFunc(func(ctx context.Context, req *message.Request) (*message.Response, error) {
			ctx, span := observability.StartSpan(ctx, observability.SpanHTTPSend)
			defer span.End()

			observability.SetSpanAttribute(ctx, observability.AttrHTTPMethod, req.Method)
			if req.URL != nil {
				observability.SetSpanAttribute(ctx, observability.AttrHTTPURL, req.URL.String())
			}

			resp, err := inner.Send(ctx, req)
			if err != nil {
				observability.SetSpanError(ctx, err)
				observability.SetSpanAttribute(ctx, observability.AttrErrorMessage, err.Error())
				var ce *Error
				if errors.As(err, &ce) {
					observability.SetSpanAttribute(ctx, observability.AttrErrorCode, ce.Code.String())
				}
				return nil, err
			}

			observability.SetSpanAttribute(ctx, observability.AttrHTTPStatus, resp.Status)
			return resp, nil
		})
	}
}
