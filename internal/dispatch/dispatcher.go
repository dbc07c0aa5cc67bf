package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/slack-go/slack"

	"github.com/rewordhq/reword-gw/internal/log"
	"github.com/rewordhq/reword-gw/internal/slackmsg"
	"github.com/rewordhq/reword-gw/internal/transform"
)

const (
	// DefaultTransformTimeout bounds a single transform call.
	DefaultTransformTimeout = 45 * time.Second

	// DefaultPostTimeout bounds the terminal callback POST.
	DefaultPostTimeout = 10 * time.Second
)

// DeferredTask is one unit of deferred reword work. It holds its own copies of
// the command text and callback URL; no other component mutates it after
// creation. Its lifecycle ends with exactly one terminal post.
type DeferredTask struct {
	ID          string
	Text        string
	CallbackURL string
}

// NewTask creates a DeferredTask with a fresh ID for log correlation.
func NewTask(text, callbackURL string) DeferredTask {
	return DeferredTask{
		ID:          uuid.NewString(),
		Text:        text,
		CallbackURL: callbackURL,
	}
}

// Poster delivers a rendered message to a callback URL.
type Poster interface {
	Post(ctx context.Context, url string, msg slack.Msg) error
}

// Dispatcher executes deferred tasks: one transform call under a timeout
// budget, then one terminal post to the task's callback URL.
type Dispatcher struct {
	transformer      transform.Transformer
	poster           Poster
	submitter        Submitter
	transformTimeout time.Duration
	postTimeout      time.Duration
	logger           *slog.Logger
}

// New creates a Dispatcher. Non-positive timeouts get defaults.
func New(t transform.Transformer, p Poster, s Submitter, transformTimeout time.Duration) *Dispatcher {
	if transformTimeout <= 0 {
		transformTimeout = DefaultTransformTimeout
	}
	return &Dispatcher{
		transformer:      t,
		poster:           p,
		submitter:        s,
		transformTimeout: transformTimeout,
		postTimeout:      DefaultPostTimeout,
		logger:           log.WithComponent("dispatch"),
	}
}

// Schedule hands the task to the configured submitter. With the tracked and
// detached submitters this returns immediately; with the sync submitter it
// returns after the task has run to its terminal post.
func (d *Dispatcher) Schedule(task DeferredTask) {
	d.submitter.Submit(func(ctx context.Context) {
		d.run(ctx, task)
	})
}

// run resolves one task. Exactly one of the success or failure renderings is
// posted, including when the transform panics or times out.
func (d *Dispatcher) run(ctx context.Context, task DeferredTask) {
	taskLogger := log.WithTask(task.ID)
	started := time.Now()

	msg := d.resolve(ctx, task, taskLogger)

	postCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.postTimeout)
	defer cancel()

	if err := d.poster.Post(postCtx, task.CallbackURL, msg); err != nil {
		// Terminal: the synchronous channel is closed and the callback URL is
		// short-lived, so there is nowhere left to report to.
		taskLogger.Error("callback delivery failed",
			"error", err,
			"duration_ms", time.Since(started).Milliseconds(),
		)
		return
	}

	taskLogger.Info("callback delivered",
		"duration_ms", time.Since(started).Milliseconds(),
	)
}

// resolve performs the transform call and chooses the terminal rendering.
func (d *Dispatcher) resolve(ctx context.Context, task DeferredTask, taskLogger *slog.Logger) (msg slack.Msg) {
	defer func() {
		if r := recover(); r != nil {
			taskLogger.Error("deferred task panicked", "panic", r)
			msg = slackmsg.Failure("Error: internal error while rewording your message")
		}
	}()

	transformCtx, cancel := context.WithTimeout(ctx, d.transformTimeout)
	defer cancel()

	result, err := d.transformer.Transform(transformCtx, task.Text)
	if err != nil {
		taskLogger.Warn("transform failed", "error", err)
		return slackmsg.Failure(fmt.Sprintf("Error: %v", err))
	}

	return slackmsg.Success(task.Text, result)
}
