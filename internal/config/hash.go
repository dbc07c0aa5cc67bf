package config

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"
)

// ComputeFileFingerprint computes the BLAKE3 hash of a config file, so
// operators can confirm which file a running instance loaded.
func ComputeFileFingerprint(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	hash := blake3.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

// Fingerprint hashes the effective configuration with secrets redacted. Logged
// at startup; two instances with the same fingerprint behave identically.
func (c *Config) Fingerprint() string {
	redacted := *c
	if redacted.Slack.SigningSecret != "" {
		redacted.Slack.SigningSecret = "<redacted>"
	}
	if redacted.Transform.APIKey != "" {
		redacted.Transform.APIKey = "<redacted>"
	}

	data, err := yaml.Marshal(&redacted)
	if err != nil {
		return ""
	}
	hash := blake3.Sum256(data)
	return hex.EncodeToString(hash[:8])
}
