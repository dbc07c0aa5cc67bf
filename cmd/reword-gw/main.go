package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rewordhq/reword-gw/internal/callback"
	"github.com/rewordhq/reword-gw/internal/config"
	"github.com/rewordhq/reword-gw/internal/dispatch"
	"github.com/rewordhq/reword-gw/internal/log"
	"github.com/rewordhq/reword-gw/internal/transform"
	"github.com/rewordhq/reword-gw/internal/webhook"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "start":
		os.Exit(runStart(args))
	case "config":
		os.Exit(runConfigNoun(args))
	case "version":
		fmt.Printf("reword-gw version %s\n", version)
		os.Exit(0)
	case "help", "--help", "-h":
		printUsage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`reword-gw - Signed Slack slash-command gateway with deferred reword delivery

Usage:
  reword-gw <command> [flags]

Commands:
  start             Start the gateway service in foreground
  config check      Validate the effective configuration
  version           Show version information
  help              Show this help message

Flags:
  --config <path>   Path to configuration file (optional; environment
                    variables alone are enough to run)

Environment:
  SLACK_SIGNING_SECRET   Shared secret for inbound webhook verification
  REWORD_API_KEY         Model provider API key
  REWORD_PROVIDER        anthropic (default) or openai
  REWORD_DISPATCH_MODE   tracked (default), detached, or sync
`)
}

func runConfigNoun(args []string) int {
	if len(args) < 1 || args[0] != "check" {
		fmt.Fprintf(os.Stderr, "Usage: reword-gw config check [--config <path>]\n")
		return 1
	}
	return runConfigCheck(args[1:])
}

func runConfigCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse flags: %v\n", err)
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Load error: %v\n", err)
		return 1
	}

	results := cfg.Validate()
	for _, r := range results {
		fmt.Printf("FAIL %s: %s\n", r.Field, r.Message)
	}
	if len(results) > 0 {
		fmt.Println("Status: Configuration check FAILED.")
		return 1
	}

	fmt.Printf("Fingerprint: %s\n", cfg.Fingerprint())
	fmt.Println("Status: Configuration check PASSED.")
	return 0
}

func runStart(args []string) int {
	fs := flag.NewFlagSet("start", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse flags: %v\n", err)
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log.Setup(cfg.Service.LogLevel)
	logger := log.WithComponent("main")
	logger.Info("reword-gw starting",
		"version", version,
		"config_fingerprint", cfg.Fingerprint(),
		"dispatch_mode", cfg.Dispatch.Mode,
		"provider", cfg.Transform.Provider,
	)

	for _, r := range cfg.Validate() {
		logger.Warn("configuration problem", "field", r.Field, "message", r.Message)
	}

	transformer, err := transform.New(cfg.Transform.Provider, transform.Options{
		APIKey:       cfg.Transform.APIKey,
		APIBase:      cfg.Transform.APIBase,
		Model:        cfg.Transform.Model,
		MaxTokens:    cfg.Transform.MaxTokens,
		SystemPrompt: cfg.Transform.SystemPrompt,
	})
	if err != nil {
		logger.Error("failed to build transformer", "error", err)
		return 1
	}

	poster := callback.New(&http.Client{Timeout: dispatch.DefaultPostTimeout})
	submitter := dispatch.FromMode(cfg.Dispatch.Mode)
	dispatcher := dispatch.New(transformer, poster, submitter, cfg.Transform.Timeout)

	server := webhook.New(webhook.Config{
		Listen:        cfg.Service.Listen,
		SigningSecret: cfg.Slack.SigningSecret,
		CommandPath:   cfg.Slack.CommandPath,
		InteractPath:  cfg.Slack.InteractPath,
		MaxBodySize:   cfg.Slack.MaxBodySize,
	}, dispatcher, log.WithComponent("webhook"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("shutdown signal received", "signal", sig.String())
		cancel()
	}()

	if err := server.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("webhook server failed", "error", err)
		return 1
	}

	// The HTTP listener is down; drain deferred tasks so accepted commands
	// still get their callback.
	if tracked, ok := submitter.(*dispatch.Tracked); ok {
		logger.Info("draining deferred tasks", "grace", cfg.Dispatch.DrainTimeout.String())
		if !tracked.Drain(cfg.Dispatch.DrainTimeout) {
			logger.Warn("drain grace period expired with tasks still running")
		}
	}

	logger.Info("reword-gw stopped")
	return 0
}
