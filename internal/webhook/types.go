package webhook

import (
	"github.com/rewordhq/reword-gw/internal/dispatch"
)

// TaskScheduler defines the interface for scheduling the deferred reword work
// of an accepted command.
type TaskScheduler interface {
	Schedule(task dispatch.DeferredTask)
}

// Config holds webhook server configuration.
type Config struct {
	// Listen is the host:port to bind.
	Listen string

	// SigningSecret is the shared secret for Slack's v0 request signing.
	// Empty means the server is misconfigured; requests get a 500.
	SigningSecret string

	// CommandPath is the slash-command endpoint path (default "/slack/command").
	CommandPath string

	// InteractPath is the interactive-payload endpoint path (default "/slack/interact").
	InteractPath string

	// MaxBodySize is the maximum allowed request body size in bytes (default: 1MB)
	MaxBodySize int64
}

// CommandPayload is the decoded slash-command form body. All fields default to
// empty string when absent. The identity fields are passthrough, used only for
// logging.
type CommandPayload struct {
	Text        string
	CallbackURL string
	UserID      string
	UserName    string
	ChannelID   string
	ChannelName string
	TeamID      string
	Command     string
	TriggerID   string
}

// ErrorResponse is the JSON response for webhook errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Slack's signing headers.
const (
	SignatureHeader = "X-Slack-Signature"
	TimestampHeader = "X-Slack-Request-Timestamp"
)

// Default values
const (
	DefaultMaxBodySize  = 1048576 // 1 MB
	DefaultCommandPath  = "/slack/command"
	DefaultInteractPath = "/slack/interact"
)
