package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/slack-go/slack"

	"github.com/rewordhq/reword-gw/internal/dispatch"
	"github.com/rewordhq/reword-gw/internal/slackmsg"
)

// Server represents the webhook HTTP server.
type Server struct {
	config    Config
	scheduler TaskScheduler
	logger    *slog.Logger
	server    *http.Server
}

// New creates a new webhook server instance.
func New(config Config, scheduler TaskScheduler, logger *slog.Logger) *Server {
	// Apply defaults
	if config.MaxBodySize == 0 {
		config.MaxBodySize = DefaultMaxBodySize
	}
	if config.CommandPath == "" {
		config.CommandPath = DefaultCommandPath
	}
	if config.InteractPath == "" {
		config.InteractPath = DefaultInteractPath
	}

	return &Server{
		config:    config,
		scheduler: scheduler,
		logger:    logger,
	}
}

// Start starts the webhook HTTP server (blocking).
func (s *Server) Start(ctx context.Context) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         s.config.Listen,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("webhook server starting",
		"listen", s.config.Listen,
		"command_path", s.config.CommandPath,
	)

	// Run server in goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for context cancellation or server error
	select {
	case <-ctx.Done():
		s.logger.Info("webhook server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("webhook server shutdown failed: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		return fmt.Errorf("webhook server error: %w", err)
	}
}

// setupRoutes configures the HTTP router.
func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Post(s.config.CommandPath, s.handleCommand)
	r.Post(s.config.InteractPath, s.handleInteraction)
	r.Get("/healthz", s.handleHealth)

	return r
}

// loggingMiddleware logs HTTP requests (excludes sensitive payloads).
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		// Log request (no body content for security)
		s.logger.Info("webhook request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
			"remote_addr", r.RemoteAddr,
		)
	})
}

// handleCommand handles the slash-command webhook.
//
// Per-request state machine: verify signature (401 on failure), parse the form
// body, validate non-empty text (200 with a guidance notice, nothing
// scheduled), otherwise schedule the deferred task and acknowledge with 200.
// The eventual result reaches the user through the callback URL, not through
// this response.
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readVerifiedBody(w, r)
	if !ok {
		return
	}

	payload := parseCommandPayload(body)

	if strings.TrimSpace(payload.Text) == "" {
		s.respondMsg(w, slackmsg.Failure(slackmsg.EmptyTextNotice))
		return
	}

	task := dispatch.NewTask(payload.Text, payload.CallbackURL)
	s.scheduler.Schedule(task)

	s.logger.Info("command accepted",
		"task_id", task.ID,
		"command", payload.Command,
		"user_id", payload.UserID,
		"channel_id", payload.ChannelID,
	)

	s.respondMsg(w, slackmsg.Acknowledgment())
}

// handleInteraction handles interactive payloads (buttons, shortcuts). The
// payload is parsed once into a typed kind and acknowledged; unrecognized
// kinds are acknowledged too.
func (s *Server) handleInteraction(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readVerifiedBody(w, r)
	if !ok {
		return
	}

	inter := slackmsg.ParseInteraction([]byte(formField(body, "payload")))

	s.logger.Info("interaction received",
		"kind", string(inter.Kind),
		"user_id", inter.UserID,
		"trigger_id", inter.TriggerID,
		"action_ids", strings.Join(inter.ActionIDs, ","),
	)

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readVerifiedBody reads the size-limited request body and checks the v0
// signature. On any failure it writes the error response and returns ok=false.
func (s *Server) readVerifiedBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if s.config.SigningSecret == "" {
		s.logger.Error("signing secret not configured")
		s.respondError(w, http.StatusInternalServerError, "Server configuration error")
		return nil, false
	}

	// Enforce body size limit
	limitedReader := io.LimitReader(r.Body, s.config.MaxBodySize+1)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to read request body")
		return nil, false
	}
	if int64(len(body)) > s.config.MaxBodySize {
		s.respondError(w, http.StatusRequestEntityTooLarge, "payload too large")
		return nil, false
	}

	signature := r.Header.Get(SignatureHeader)
	timestamp := r.Header.Get(TimestampHeader)
	if !verifySlackSignature(s.config.SigningSecret, signature, timestamp, body, time.Now()) {
		s.logger.Warn("request signature verification failed",
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
		)
		s.respondError(w, http.StatusUnauthorized, "Invalid request signature")
		return nil, false
	}

	return body, true
}

// respondMsg sends a rendered Slack message with HTTP 200.
func (s *Server) respondMsg(w http.ResponseWriter, msg slack.Msg) {
	s.respondJSON(w, http.StatusOK, msg)
}

// respondJSON sends a JSON response.
func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends a JSON error response.
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, ErrorResponse{Error: message})
}
