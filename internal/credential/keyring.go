// Package credential stores the Jira API token in the system keyring.
package credential

import (
	"fmt"
	"os"

	"github.com/99designs/keyring"
)

const (
	serviceName = "jig"
	tokenKey    = "jira-api-token"
)

// openKeyring returns a configured keyring instance.
func openKeyring() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/jig/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("jig-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// Token returns the Jira API token. The JIRA_API_TOKEN environment variable
// takes precedence over the keyring, so CI and one-off shells work without a
// stored credential.
func Token() (string, error) {
	if v := os.Getenv("JIRA_API_TOKEN"); v != "" {
		return v, nil
	}

	ring, err := openKeyring()
	if err != nil {
		return "", err
	}
	item, err := ring.Get(tokenKey)
	if err != nil {
		return "", fmt.Errorf("no API token found: run `jig login` or set JIRA_API_TOKEN: %w", err)
	}
	return string(item.Data), nil
}

// SetToken stores the Jira API token in the system keyring.
func SetToken(value string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}
	if err := ring.Set(keyring.Item{Key: tokenKey, Data: []byte(value)}); err != nil {
		return fmt.Errorf("storing API token: %w", err)
	}
	return nil
}

// DeleteToken removes the stored Jira API token.
func DeleteToken() error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}
	if err := ring.Remove(tokenKey); err != nil {
		return fmt.Errorf("deleting API token: %w", err)
	}
	return nil
}
