package httpclient

import (
	"context"
	"time"

	"github.com/wv0m56/http-client/logger"
	"github.com/wv0m56/http-client/message"
)

// WithLogging returns a Middleware that logs every Send: method, URL,
// status, and duration.
func WithLogging(log *logger.Logger) Middleware {
	return func(inner Client) Client {
		return &loggingClient{inner: inner, log: log.WithComponent("httpclient")}
	}
}

type loggingClient struct {
	inner Client
	log   *logger.Logger
}

func (l *loggingClient) Send(ctx context.Context, req *message.Request) (*message.Response, error) {
	start := time.Now()
	resp, err := l.inner.Send(ctx, req)
	duration := time.Since(start)

	var url string
	if req.URL != nil {
		url = req.URL.String()
	}
	fields := logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldURL, url,
		logger.FieldDuration, duration.Milliseconds(),
	)
	if id := req.Header.Get(RequestIDHeader); id != "" {
		fields[logger.FieldRequestID] = id
	}

	if err != nil {
		fields[logger.FieldError] = err.Error()
		l.log.Error("send failed", fields)
		return nil, err
	}

	fields[logger.FieldStatus] = resp.Status
	l.log.Debug("send ok", fields)
	return resp, nil
}
