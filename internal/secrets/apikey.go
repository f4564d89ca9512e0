package secrets

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// “Service” groups the app's secrets in the OS keychain.
	KeyringService = "jobwatch"
	APIKeyAccount  = "sendgrid"
)

// ResolveAPIKey prefers the value from the environment and falls back to the
// keychain. A missing key is "", not an error; notification is then disabled.
func ResolveAPIKey(fromEnv string) string {
	if k := strings.TrimSpace(fromEnv); k != "" {
		return k
	}
	k, err := keyring.Get(KeyringService, APIKeyAccount)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(k)
}

func SetAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(KeyringService, APIKeyAccount, strings.TrimSpace(key))
}

func DeleteAPIKey() error {
	err := keyring.Delete(KeyringService, APIKeyAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
