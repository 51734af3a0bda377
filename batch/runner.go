// SPDX-License-Identifier: MIT
// File: runner.go
// Role: per-level program execution and collection into a graded value.
// Flow:
//   1. validate the level set and inputs (graded.New);
//   2. fan out one invocation per level on min(workers, levels) goroutines;
//   3. store each output at its level index;
//   4. on the first failure cancel the remaining invocations and return it;
//   5. canonicalize the collected pairs.

package batch

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gradual/graded"
)

// EmptyOutput replaces an empty (or whitespace-only) program output.
const EmptyOutput = "None"

// Runner runs one Command per level.
type Runner struct {
	cmd     Command
	workers int
	timeout time.Duration
	logger  *zap.Logger
	metrics *Metrics
}

// NewRunner validates cmd and the options.
//
// Errors:
//   - ErrEmptyCommand when cmd.Path is empty.
//   - ErrInvalidWorkers for a worker count of 0 or below -1.
func NewRunner(cmd Command, opts ...Option) (*Runner, error) {
	if strings.TrimSpace(cmd.Path) == "" {
		return nil, batchErrorf("NewRunner", ErrEmptyCommand)
	}
	o := gatherOptions(opts...)
	workers, err := resolveWorkers(o.workers)
	if err != nil {
		return nil, batchErrorf("NewRunner", err)
	}

	return &Runner{
		cmd:     cmd,
		workers: workers,
		timeout: o.timeout,
		logger:  o.logger,
		metrics: o.metrics,
	}, nil
}

// resolveWorkers maps -1 to the CPU count and caps larger values at it.
func resolveWorkers(n int) (int, error) {
	cpus := runtime.NumCPU()
	switch {
	case n == -1:
		return cpus, nil
	case n == 1:
		return 1, nil
	case n > 1:
		return min(n, cpus), nil
	default:
		return 0, ErrInvalidWorkers
	}
}

// Workers returns the effective concurrency limit.
func (r *Runner) Workers() int { return r.workers }

// Command returns the program run for every level.
func (r *Runner) Command() Command { return r.cmd }

// RunLevels builds the input value from parallel slices and runs it.
//
// Errors:
//   - graded.ErrValidation for an invalid level set or a length mismatch.
//   - *ExecutionError (ErrExecution) for the first failing invocation.
func (r *Runner) RunLevels(ctx context.Context, lv []float64, inputs []string) (graded.Result[string], error) {
	in, err := graded.New(lv, inputs, graded.WithShallowCopy())
	if err != nil {
		return graded.Result[string]{}, batchErrorf("RunLevels", err)
	}

	return r.Run(ctx, in)
}

// Run executes the program once per level of in.
func (r *Runner) Run(ctx context.Context, in *graded.Value[string]) (graded.Result[string], error) {
	runID := uuid.NewString()
	log := r.logger.With(zap.String("run_id", runID))
	pairs := in.Pairs()
	outputs := make([]string, len(pairs))
	start := time.Now()

	log.Debug("batch run started",
		zap.Stringer("command", r.cmd),
		zap.Int("levels", len(pairs)),
		zap.Int("workers", r.workers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, p := range pairs {
		g.Go(func() error {
			out, err := r.invoke(gctx, p.Level, p.Value)
			if err != nil {
				return err
			}
			outputs[i] = out
			log.Debug("level done", zap.Float64("level", p.Level), zap.String("output", out))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.metrics.run(err)
		log.Warn("batch run failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return graded.Result[string]{}, err
	}

	for i := range pairs {
		pairs[i].Value = outputs[i]
	}
	res, err := graded.Canonicalize(pairs, graded.WithShallowCopy())
	r.metrics.run(err)
	if err != nil {
		return graded.Result[string]{}, batchErrorf("Run", err)
	}
	log.Debug("batch run finished",
		zap.Bool("crisp", res.IsCrisp()),
		zap.Duration("elapsed", time.Since(start)))

	return res, nil
}

// invoke runs the program for one level and returns its normalized output.
func (r *Runner) invoke(ctx context.Context, level float64, input string) (out string, err error) {
	start := r.metrics.begin()
	defer func() { r.metrics.end(start, err) }()

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.cmd.Path, r.cmd.Args...)
	cmd.Stdin = strings.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	cmd.Dir = r.cmd.Dir
	if len(r.cmd.Env) > 0 {
		cmd.Env = append(os.Environ(), r.cmd.Env...)
	}
	cmd.WaitDelay = DefaultWaitDelay

	if err = cmd.Run(); err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.Join(err, ctxErr)
		}
		return "", &ExecutionError{
			Level:    level,
			ExitCode: code,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
	}

	if out = strings.TrimSpace(stdout.String()); out == "" {
		out = EmptyOutput
	}

	return out, nil
}
