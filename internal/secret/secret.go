// Package secret resolves the Clockify API key. Sources, in order: the
// CLOCKIFY_API_KEY environment variable, a .env file in the working
// directory, and the OS keyring (managed via `clockfill auth`).
package secret

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// EnvVar is the environment variable holding the API key.
	EnvVar = "CLOCKIFY_API_KEY"

	serviceName = "clockfill"
	keyName     = "api-key"
)

// APIKey returns the Clockify API key from the first available source.
func APIKey() (string, error) {
	if key := os.Getenv(EnvVar); key != "" {
		return key, nil
	}
	if key := fromDotEnv(".env"); key != "" {
		return key, nil
	}
	key, err := keyring.Get(serviceName, keyName)
	if err == nil && key != "" {
		return key, nil
	}
	if err != nil && !errors.Is(err, keyring.ErrNotFound) && !errors.Is(err, keyring.ErrUnsupportedPlatform) {
		return "", fmt.Errorf("reading API key from keyring: %w", err)
	}
	return "", fmt.Errorf("no Clockify API key found: set %s, add it to ./.env, or run `clockfill auth set`", EnvVar)
}

// Store saves the API key in the OS keyring.
func Store(key string) error {
	if key == "" {
		return errors.New("API key cannot be empty")
	}
	if err := keyring.Set(serviceName, keyName, key); err != nil {
		return fmt.Errorf("storing API key in keyring: %w", err)
	}
	return nil
}

// Clear removes the API key from the OS keyring.
func Clear() error {
	err := keyring.Delete(serviceName, keyName)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("removing API key from keyring: %w", err)
	}
	return nil
}

// fromDotEnv reads KEY=VALUE lines from a .env file and returns the API key
// if present. Values never override a real environment variable (APIKey
// checks the environment first). Quotes around values are stripped and lines
// starting with # are ignored.
func fromDotEnv(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(k) != EnvVar {
			continue
		}
		v = strings.TrimSpace(v)
		v = strings.Trim(v, `"'`)
		return v
	}
	return ""
}
