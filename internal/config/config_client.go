package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// Client defaults.
const (
	DefaultClientServerURL      = "http://localhost:8080"
	DefaultClientRequestTimeout = 15 * time.Second
)

// ClientConfig holds the settings of the command-line client.
type ClientConfig struct {
	// ServerURL is the base URL of the labels API.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// Token is the bearer token sent with every request.
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds every outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig builds and validates the client configuration from
// CLIENT_* environment variables and the flags found in args. Flags win over
// environment variables.
//
// The arguments left after flag parsing (the client subcommand and its own
// arguments) are returned as rest.
func GetClientConfig(args []string) (cfg *ClientConfig, rest []string, err error) {
	var envCfg struct {
		Client ClientConfig `envPrefix:"CLIENT_"`
	}
	if err := parseEnv(&envCfg); err != nil {
		return nil, nil, err
	}

	var serverURL, token string
	var timeout time.Duration

	fs := flag.NewFlagSet("labels-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&serverURL, "server", "", "Labels API base URL")
	fs.StringVar(&token, "token", "", "Bearer token")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 15s)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg = &envCfg.Client
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if token != "" {
		cfg.Token = token
	}
	if timeout != 0 {
		cfg.RequestTimeout = timeout
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultClientServerURL
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = DefaultClientRequestTimeout
	}

	return cfg, fs.Args(), cfg.validate()
}
