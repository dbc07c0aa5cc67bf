package config

import "time"

// Config represents the complete reword-gw configuration.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Slack     SlackConfig     `yaml:"slack"`
	Transform TransformConfig `yaml:"transform"`
	Dispatch  DispatchConfig  `yaml:"dispatch"`
}

// ServiceConfig defines core service settings.
type ServiceConfig struct {
	Name     string `yaml:"name"`
	Listen   string `yaml:"listen" env:"REWORD_LISTEN"`
	LogLevel string `yaml:"log_level" env:"REWORD_LOG_LEVEL"`
}

// SlackConfig defines the inbound webhook settings.
type SlackConfig struct {
	// SigningSecret authenticates inbound webhooks. Prefer the environment
	// variable over the file; it is a single static shared secret.
	SigningSecret string `yaml:"signing_secret" env:"SLACK_SIGNING_SECRET"`
	CommandPath   string `yaml:"command_path"`
	InteractPath  string `yaml:"interact_path"`
	MaxBodySize   int64  `yaml:"max_body_size,omitempty"`
}

// TransformConfig defines the text-transform provider settings.
type TransformConfig struct {
	// Provider selects the model backend: "anthropic" (default) or "openai".
	Provider     string        `yaml:"provider" env:"REWORD_PROVIDER"`
	Model        string        `yaml:"model" env:"REWORD_MODEL"`
	APIKey       string        `yaml:"api_key" env:"REWORD_API_KEY"`
	APIBase      string        `yaml:"api_base,omitempty" env:"REWORD_API_BASE"`
	MaxTokens    int64         `yaml:"max_tokens,omitempty"`
	SystemPrompt string        `yaml:"system_prompt,omitempty"`
	Timeout      time.Duration `yaml:"timeout"`
}

// DispatchConfig defines how deferred tasks are executed.
type DispatchConfig struct {
	// Mode selects the execution capability level: "tracked" (default,
	// drained on shutdown), "detached" (no completion guarantee), or "sync"
	// (runs on the request path).
	Mode         string        `yaml:"mode" env:"REWORD_DISPATCH_MODE"`
	DrainTimeout time.Duration `yaml:"drain_timeout"`
}

// Defaults returns a Config with sensible defaults.
func Defaults() *Config {
	return &Config{
		Service: ServiceConfig{
			Name:     "reword-gw",
			Listen:   "127.0.0.1:8080",
			LogLevel: "info",
		},
		Slack: SlackConfig{
			CommandPath:  "/slack/command",
			InteractPath: "/slack/interact",
			MaxBodySize:  1048576,
		},
		Transform: TransformConfig{
			Provider:  "anthropic",
			MaxTokens: 1024,
			Timeout:   45 * time.Second,
		},
		Dispatch: DispatchConfig{
			Mode:         "tracked",
			DrainTimeout: 60 * time.Second,
		},
	}
}
