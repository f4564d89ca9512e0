package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvAPIKey    = "SENDGRID_API_KEY"
	EnvSender    = "SENDER_EMAIL"
	EnvRecipient = "RECIPIENT_EMAIL"
)

// Credentials are the email settings that never live in the config file.
type Credentials struct {
	APIKey    string
	Sender    string
	Recipient string
}

// LoadDotEnv copies variables from a .env file into the environment without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func CredentialsFromEnv() Credentials {
	return Credentials{
		APIKey:    strings.TrimSpace(os.Getenv(EnvAPIKey)),
		Sender:    strings.TrimSpace(os.Getenv(EnvSender)),
		Recipient: strings.TrimSpace(os.Getenv(EnvRecipient)),
	}
}
