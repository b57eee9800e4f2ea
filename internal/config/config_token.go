package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// TokenConfig holds the settings of the token issuing tool.
type TokenConfig struct {
	// App carries the signing settings shared with the server.
	App App `envPrefix:"APP_"`

	// UserID is the "sub" claim of the issued token.
	UserID int64
}

// GetTokenConfig reads APP_* environment variables and the flags found in
// args. Flags win over environment variables.
//
// Flags:
//
//	-user user id placed in the token subject
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token lifetime (e.g., "1h")
func GetTokenConfig(args []string) (*TokenConfig, error) {
	var cfg TokenConfig
	if err := parseEnv(&cfg); err != nil {
		return nil, err
	}

	var signKey, issuer string
	var duration time.Duration

	fs := flag.NewFlagSet("labels-token", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Int64Var(&cfg.UserID, "user", 0, "User id")
	fs.StringVar(&signKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&issuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&duration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if signKey != "" {
		cfg.App.TokenSignKey = signKey
	}
	if issuer != "" {
		cfg.App.TokenIssuer = issuer
	}
	if duration != 0 {
		cfg.App.TokenDuration = duration
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}

	if cfg.UserID <= 0 {
		return nil, fmt.Errorf("%w: positive -user is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenSignKey == "" {
		return nil, fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}

	return &cfg, nil
}
