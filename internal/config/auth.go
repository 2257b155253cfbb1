package config

import "fmt"

// AuthConfig holds identity token verification configuration.
// The service trusts the user id carried in the token; it never
// re-derives identity itself.
type AuthConfig struct {
	// JWTSecret is the HMAC secret used to verify bearer tokens.
	JWTSecret string
	// Issuer is the expected token issuer. Empty disables the check.
	Issuer string
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret: GetEnv("AUTH_JWT_SECRET", ""),
		Issuer:    GetEnv("AUTH_ISSUER", ""),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET must be set")
	}
	return nil
}
