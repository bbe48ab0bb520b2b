package nethttp

import (
	"fmt"
	"time"

	"github.com/wv0m56/http-client/security"
)

const defaultTimeout = 30 * time.Second

// Config configures the engine handle built at construction. All fields
// pass through to the underlying http.Client and http.Transport with no
// reinterpretation; zero values keep the transport's stock behavior.
type Config struct {
	// Name identifies the client in logs and health reports.
	Name string `yaml:"name" mapstructure:"name"`

	// Timeout is the engine-level request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to requests that do not set
	// the same name themselves.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// TLS configures TLS settings for the transport.
	TLS *security.TLSConfig `yaml:"tls" mapstructure:"tls"`

	// MaxIdleConns caps the idle connection pool. 0 keeps the transport
	// default.
	MaxIdleConns int `yaml:"max_idle_conns" mapstructure:"max_idle_conns"`

	// MaxIdleConnsPerHost caps idle connections per host. 0 keeps the
	// transport default.
	MaxIdleConnsPerHost int `yaml:"max_idle_conns_per_host" mapstructure:"max_idle_conns_per_host"`

	// MaxConnsPerHost caps total connections per host. 0 means unlimited.
	MaxConnsPerHost int `yaml:"max_conns_per_host" mapstructure:"max_conns_per_host"`

	// DisableCompression turns off transparent gzip.
	DisableCompression bool `yaml:"disable_compression" mapstructure:"disable_compression"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "nethttp"
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("nethttp: timeout must be positive")
	}
	if c.MaxIdleConns < 0 || c.MaxIdleConnsPerHost < 0 || c.MaxConnsPerHost < 0 {
		return fmt.Errorf("nethttp: connection limits must not be negative")
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}
