// Package config loads client configuration from YAML files and the
// environment. Environment variables override file values using the
// HTTPCLIENT_ prefix with underscore-separated paths (e.g.
// HTTPCLIENT_TIMEOUT, HTTPCLIENT_TLS_CA_FILE).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "HTTPCLIENT"

// LoaderConfig holds optional file overrides for Load.
type LoaderConfig struct {
	// ConfigFile is an explicit config file path. When empty, standard
	// locations are searched (./config.yml, ./config/config.yml).
	ConfigFile string
	// EnvFile is an explicit .env file path. When empty, ./.env is used
	// if present.
	EnvFile string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load populates cfg from the resolved config file, .env file, and
// environment. Missing files are skipped; a present but unreadable file is
// an error.
func Load(cfg any, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	if lc.EnvFile == "" && exists(".env") {
		lc.EnvFile = ".env"
	}
	if lc.EnvFile != "" && exists(lc.EnvFile) {
		if err := godotenv.Load(lc.EnvFile); err != nil {
			return fmt.Errorf("config: load env file %s: %w", lc.EnvFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if lc.ConfigFile == "" {
		lc.ConfigFile = findConfigFile()
	}
	if lc.ConfigFile != "" {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", lc.ConfigFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}
	return nil
}

// findConfigFile searches standard locations for a config file.
func findConfigFile() string {
	candidates := []string{
		"./config.yml",
		"./config.yaml",
		"./config/config.yml",
		"./config/config.yaml",
	}
	for _, path := range candidates {
		if exists(path) {
			return path
		}
	}
	return ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
