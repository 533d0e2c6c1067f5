// Package faceswap shells out to the Python face replacement script and
// reports whether its ML dependencies are importable at all.
package faceswap

import (
	"context"
	"fmt"
	"os/exec"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// Transformer runs a face replacement. Available reports whether the real
// engine can run; callers fall back to a template copy when it cannot.
type Transformer interface {
	Run(ctx context.Context, source, target, output string) error
	Available() bool
}

// Runner executes the external Python script
type Runner struct {
	python    string
	script    string
	available atomic.Bool
}

// NewRunner creates a runner for the given interpreter and script path
func NewRunner(python, script string) *Runner {
	if python == "" {
		python = "python"
	}
	return &Runner{python: python, script: script}
}

// Probe checks once whether the ML stack is importable. Called at startup;
// the result gates every later Run.
func (r *Runner) Probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.python, "-c", "import insightface")
	out, err := cmd.CombinedOutput()
	if err != nil {
		r.available.Store(false)
		log.Warn().Err(err).
			Str("python", r.python).
			Str("output", string(out)).
			Msg("Face swap engine unavailable, running in demo mode")
		return
	}

	r.available.Store(true)
	log.Info().Str("python", r.python).Str("script", r.script).Msg("Face swap engine ready")
}

// Available reports the result of the startup probe
func (r *Runner) Available() bool {
	return r.available.Load()
}

// Run executes the swap script. The caller bounds the context; when it
// expires the process is killed and the context error is returned.
func (r *Runner) Run(ctx context.Context, source, target, output string) error {
	start := time.Now()

	cmd := exec.CommandContext(ctx, r.python, r.script,
		"--source", source,
		"--target", target,
		"--output", output,
		"--cpu",
	)

	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			log.Error().
				Dur("elapsed", time.Since(start)).
				Msg("Face swap timed out, process killed")
			return fmt.Errorf("face swap timed out: %w", ctx.Err())
		}
		log.Error().Err(err).
			Str("output", string(out)).
			Msg("Face swap process failed")
		return fmt.Errorf("face swap failed: %w", err)
	}

	log.Info().
		Dur("elapsed", time.Since(start)).
		Str("output_file", output).
		Msg("Face swap completed")
	return nil
}
