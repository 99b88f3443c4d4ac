package worker

import (
	"context"
	"errors"
	"sync"

	"gwen/internal/logger"
	"gwen/internal/physics"
)

const DefaultBuffer = 256

// Runner runs one simulation at a time on a worker goroutine and publishes
// its messages on the results channel. Stopping is cooperative: the run
// exits at its next frame boundary.
type Runner struct {
	log     logger.Logger
	opts    physics.Options
	results chan physics.Message

	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
	wg      sync.WaitGroup
}

func NewRunner(log logger.Logger, buffer int, opts physics.Options) *Runner {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Runner{
		log:     log,
		opts:    opts,
		results: make(chan physics.Message, buffer),
	}
}

// Results is the channel the pump drains. It is never closed.
func (r *Runner) Results() <-chan physics.Message {
	return r.results
}

// Start stops any run in progress, parses fields and launches a new run.
// Malformed fields are reported as a log message on the results channel,
// not as an error.
func (r *Runner) Start(ctx context.Context, fields []string) {
	r.Stop()

	params, err := physics.ParseParams(fields)
	if err != nil {
		r.log.Warning("Runner", "rejected parameters", map[string]interface{}{
			"error": err.Error(),
		})
		r.publish(ctx, physics.LogMessage(userMessage(err)))
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.cancel = cancel
	r.running = true
	r.mu.Unlock()

	r.log.Info("Runner", "simulation started", map[string]interface{}{
		"height":   params.Height,
		"timestep": params.Timestep,
		"total":    params.TotalTime,
	})

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer r.finish()

		err := physics.Simulate(runCtx, params, r.opts, r.results)
		switch {
		case err == nil:
			r.log.Info("Runner", "simulation finished", nil)
		case errors.Is(err, context.Canceled):
			r.log.Info("Runner", "simulation stopped", nil)
		default:
			r.log.Error("Runner", err, nil)
			r.publish(ctx, physics.LogMessage(userMessage(err)))
		}
	}()
}

// Stop cancels the current run, if any, and waits for it to exit.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}

func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *Runner) Shutdown() {
	r.Stop()
}

func (r *Runner) finish() {
	r.mu.Lock()
	r.running = false
	r.mu.Unlock()
}

func (r *Runner) publish(ctx context.Context, msg physics.Message) {
	select {
	case r.results <- msg:
	case <-ctx.Done():
	}
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, physics.ErrMissingParams):
		return "Did not receive parameters."
	case errors.Is(err, physics.ErrBadParams):
		return "Please input a number (float or int)."
	default:
		return err.Error()
	}
}
