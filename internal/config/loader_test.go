package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Service.Listen != "127.0.0.1:8080" {
		t.Errorf("Listen = %q, want default", cfg.Service.Listen)
	}
	if cfg.Slack.CommandPath != "/slack/command" {
		t.Errorf("CommandPath = %q, want default", cfg.Slack.CommandPath)
	}
	if cfg.Transform.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic", cfg.Transform.Provider)
	}
	if cfg.Transform.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", cfg.Transform.Timeout)
	}
	if cfg.Dispatch.Mode != "tracked" {
		t.Errorf("Mode = %q, want tracked", cfg.Dispatch.Mode)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
service:
  listen: 0.0.0.0:9000
  log_level: debug
slack:
  command_path: /hooks/reword
transform:
  provider: openai
  model: gpt-4o
  timeout: 30s
dispatch:
  mode: sync
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Service.Listen != "0.0.0.0:9000" {
		t.Errorf("Listen = %q", cfg.Service.Listen)
	}
	if cfg.Slack.CommandPath != "/hooks/reword" {
		t.Errorf("CommandPath = %q", cfg.Slack.CommandPath)
	}
	if cfg.Transform.Provider != "openai" {
		t.Errorf("Provider = %q", cfg.Transform.Provider)
	}
	if cfg.Transform.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v", cfg.Transform.Timeout)
	}
	if cfg.Dispatch.Mode != "sync" {
		t.Errorf("Mode = %q", cfg.Dispatch.Mode)
	}
	// Untouched fields keep their defaults.
	if cfg.Slack.InteractPath != "/slack/interact" {
		t.Errorf("InteractPath = %q, want default", cfg.Slack.InteractPath)
	}
}

func TestLoad_DirectoryResolvesConfigYaml(t *testing.T) {
	dir := t.TempDir()
	content := "service:\n  listen: 127.0.0.1:7777\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Service.Listen != "127.0.0.1:7777" {
		t.Errorf("Listen = %q", cfg.Service.Listen)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "service: [not: valid")
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
service:
  listen: 0.0.0.0:9000
transform:
  provider: openai
`)

	t.Setenv("REWORD_LISTEN", "127.0.0.1:4444")
	t.Setenv("REWORD_PROVIDER", "anthropic")
	t.Setenv("SLACK_SIGNING_SECRET", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Service.Listen != "127.0.0.1:4444" {
		t.Errorf("Listen = %q, env should win over file", cfg.Service.Listen)
	}
	if cfg.Transform.Provider != "anthropic" {
		t.Errorf("Provider = %q, env should win over file", cfg.Transform.Provider)
	}
	if cfg.Slack.SigningSecret != "from-env" {
		t.Errorf("SigningSecret = %q", cfg.Slack.SigningSecret)
	}
}

func TestLoad_ExpandsEnvVarReferences(t *testing.T) {
	t.Setenv("TEST_REWORD_SECRET", "expanded-secret")

	path := writeConfigFile(t, `
slack:
  signing_secret: ${TEST_REWORD_SECRET}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Slack.SigningSecret != "expanded-secret" {
		t.Errorf("SigningSecret = %q, want expanded value", cfg.Slack.SigningSecret)
	}
}

func TestLoad_UnsetEnvVarExpandsEmpty(t *testing.T) {
	path := writeConfigFile(t, `
transform:
  api_key: ${DEFINITELY_NOT_SET_REWORD_VAR}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Transform.APIKey != "" {
		t.Errorf("APIKey = %q, want empty for unset variable", cfg.Transform.APIKey)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Defaults()
		cfg.Slack.SigningSecret = "secret"
		cfg.Transform.APIKey = "key"
		return cfg
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:   "valid config has no findings",
			mutate: func(c *Config) {},
		},
		{
			name:      "empty listen address",
			mutate:    func(c *Config) { c.Service.Listen = "" },
			wantField: "service.listen",
		},
		{
			name:      "missing signing secret",
			mutate:    func(c *Config) { c.Slack.SigningSecret = "" },
			wantField: "slack.signing_secret",
		},
		{
			name:      "negative body size",
			mutate:    func(c *Config) { c.Slack.MaxBodySize = -1 },
			wantField: "slack.max_body_size",
		},
		{
			name:      "unknown provider",
			mutate:    func(c *Config) { c.Transform.Provider = "bard" },
			wantField: "transform.provider",
		},
		{
			name:      "missing API key",
			mutate:    func(c *Config) { c.Transform.APIKey = "" },
			wantField: "transform.api_key",
		},
		{
			name:      "excessive timeout",
			mutate:    func(c *Config) { c.Transform.Timeout = time.Hour },
			wantField: "transform.timeout",
		},
		{
			name:      "unknown dispatch mode",
			mutate:    func(c *Config) { c.Dispatch.Mode = "fire-and-hope" },
			wantField: "dispatch.mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			results := cfg.Validate()

			if tt.wantField == "" {
				if len(results) != 0 {
					t.Errorf("Validate() = %+v, want no findings", results)
				}
				return
			}

			found := false
			for _, r := range results {
				if r.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() = %+v, want a finding for %s", results, tt.wantField)
			}
		})
	}
}
