package nethttp

import (
	"context"

	"github.com/wv0m56/http-client/component"
)

// Component wraps a Client with lifecycle management. Use this when the
// adapter is part of a managed application.
type Component struct {
	client *Client
	config Config
}

var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a client component. The client is created lazily
// in Start().
func NewComponent(cfg Config) *Component {
	return &Component{config: cfg}
}

// Name returns the component name.
func (c *Component) Name() string {
	name := c.config.Name
	if name == "" {
		name = "nethttp"
	}
	return name
}

// Start builds the client and its engine.
func (c *Component) Start(_ context.Context) error {
	cl, err := NewWithConfig(c.config)
	if err != nil {
		return err
	}
	c.client = cl
	return nil
}

// Stop releases the engine's idle connections.
func (c *Component) Stop(_ context.Context) error {
	if c.client != nil {
		c.client.engine.CloseIdleConnections()
	}
	return nil
}

// Health reports whether the client has been started.
func (c *Component) Health(_ context.Context) component.Health {
	status := component.StatusHealthy
	var msg string
	if c.client == nil {
		status = component.StatusUnhealthy
		msg = "not started"
	}
	return component.Health{
		Name:    c.Name(),
		Status:  status,
		Message: msg,
	}
}

// Describe returns a summary for startup display.
func (c *Component) Describe() component.Description {
	return component.Description{
		Name: c.Name(),
		Type: "http-client",
	}
}

// Client returns the underlying client. Must be called after Start().
func (c *Component) Client() *Client {
	return c.client
}
