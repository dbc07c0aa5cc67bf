package config

import (
	"fmt"
	"time"
)

// CheckResult is one validation finding.
type CheckResult struct {
	Field   string
	Message string
}

// Validate checks the effective configuration for problems that would make
// the service unable to handle requests. Returns all findings, not just the
// first.
func (c *Config) Validate() []CheckResult {
	var results []CheckResult

	if c.Service.Listen == "" {
		results = append(results, CheckResult{"service.listen", "listen address is empty"})
	}

	if c.Slack.SigningSecret == "" {
		results = append(results, CheckResult{"slack.signing_secret",
			"signing secret is not set (set SLACK_SIGNING_SECRET); requests will be answered with 500"})
	}
	if c.Slack.MaxBodySize < 0 {
		results = append(results, CheckResult{"slack.max_body_size", "must not be negative"})
	}

	switch c.Transform.Provider {
	case "", "anthropic", "openai":
	default:
		results = append(results, CheckResult{"transform.provider",
			fmt.Sprintf("unknown provider %q (expected anthropic or openai)", c.Transform.Provider)})
	}
	if c.Transform.APIKey == "" {
		results = append(results, CheckResult{"transform.api_key",
			"provider API key is not set (set REWORD_API_KEY); every reword will fail"})
	}
	if c.Transform.Timeout < 0 || c.Transform.Timeout > 10*time.Minute {
		results = append(results, CheckResult{"transform.timeout",
			"timeout must be between 0 and 10m"})
	}

	switch c.Dispatch.Mode {
	case "", "tracked", "detached", "sync":
	default:
		results = append(results, CheckResult{"dispatch.mode",
			fmt.Sprintf("unknown mode %q (expected tracked, detached, or sync)", c.Dispatch.Mode)})
	}

	return results
}
