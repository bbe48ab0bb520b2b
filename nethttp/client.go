package nethttp

import (
	"context"
	"errors"
	"net/http"

	httpclient "github.com/wv0m56/http-client"
	"github.com/wv0m56/http-client/message"
)

// Client translates abstract requests to net/http and responses back.
// It wraps a single *http.Client engine handle; copies of a Client
// share the handle, so pooled connections are reused across copies.
type Client struct {
	name   string
	engine *http.Client
	defhdr map[string]string
}

var _ httpclient.Client = (*Client)(nil)

// New returns a Client backed by a fresh engine with default settings.
func New() *Client {
	c, _ := NewWithConfig(Config{})
	return c
}

// NewWithConfig builds a Client and its engine from cfg.
func NewWithConfig(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	transport, err := buildTransport(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{
		name: cfg.Name,
		engine: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		defhdr: cfg.Headers,
	}, nil
}

// NewWithClient wraps an existing engine. The caller keeps ownership of
// engine's transport and timeout settings.
func NewWithClient(engine *http.Client) *Client {
	if engine == nil {
		engine = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{name: "nethttp", engine: engine}
}

func buildTransport(cfg Config) (*http.Transport, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.MaxIdleConns > 0 {
		transport.MaxIdleConns = cfg.MaxIdleConns
	}
	if cfg.MaxIdleConnsPerHost > 0 {
		transport.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost
	}
	if cfg.MaxConnsPerHost > 0 {
		transport.MaxConnsPerHost = cfg.MaxConnsPerHost
	}
	transport.DisableCompression = cfg.DisableCompression
	if cfg.TLS.IsEnabled() {
		tlsConf, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		transport.TLSClientConfig = tlsConf
	}
	return transport, nil
}

// Name reports the configured client name.
func (c *Client) Name() string { return c.name }

// Unwrap exposes the engine handle for callers that need engine-level
// features the abstract surface does not model.
func (c *Client) Unwrap() *http.Client { return c.engine }

// Send translates req to the engine's native request type, executes it,
// and translates the native response back. The response body is fully
// read before Send returns; failures carry a classified *httpclient.Error.
func (c *Client) Send(ctx context.Context, req *message.Request) (*message.Response, error) {
	native, err := toNative(ctx, req, c.defhdr)
	if err != nil {
		return nil, err
	}
	resp, err := c.engine.Do(native)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	return fromNative(resp)
}

func classifyTransportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return httpclient.NewTimeoutError(err)
	}
	var urlErr interface{ Timeout() bool }
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return httpclient.NewTimeoutError(err)
	}
	return httpclient.NewConnectionError(err)
}
