package httpclient

import (
	"context"

	"github.com/wv0m56/http-client/message"
	"github.com/wv0m56/http-client/resilience"
)

// WithRetry returns a Middleware that retries failed Sends according to
// cfg. When cfg.RetryIf is unset, only errors marked Retryable (transport,
// timeout, gateway) are retried. Request bodies survive re-sends because
// translation drains them through the request's cached buffer.
func WithRetry(cfg resilience.RetryConfig) Middleware {
	if cfg.RetryIf == nil {
		cfg.RetryIf = IsRetryable
	}
	return func(inner Client) Client {
		return ClientFunc(func(ctx context.Context, req *message.Request) (*message.Response, error) {
			return resilience.Retry(ctx, cfg, func() (*message.Response, error) {
				return inner.Send(ctx, req)
			})
		})
	}
}

// WithCircuitBreaker returns a Middleware that runs each Send through a
// circuit breaker. While the circuit is open, Sends fail immediately with
// resilience.ErrCircuitOpen and no network activity occurs.
func WithCircuitBreaker(cfg resilience.CircuitBreakerConfig) Middleware {
	cb := resilience.NewCircuitBreaker(cfg)
	return func(inner Client) Client {
		return ClientFunc(func(ctx context.Context, req *message.Request) (*message.Response, error) {
			var resp *message.Response
			err := cb.Execute(func() error {
				var sendErr error
				resp, sendErr = inner.Send(ctx, req)
				return sendErr
			})
			if err != nil {
				return nil, err
			}
			return resp, nil
		})
	}
}

// WithRateLimit returns a Middleware that blocks each Send until the token
// bucket admits it or the context ends.
func WithRateLimit(cfg resilience.RateLimiterConfig) Middleware {
	rl := resilience.NewRateLimiter(cfg)
	return func(inner Client) Client {
		return ClientFunc(func(ctx context.Context, req *message.Request) (*message.Response, error) {
			if err := rl.Wait(ctx); err != nil {
				return nil, err
			}
			return inner.Send(ctx, req)
		})
	}
}
