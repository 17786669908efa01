// Package runner hands a rendered rdd command to the operating system.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/mark3labs/rddi/internal/logger"
	"github.com/mark3labs/rddi/internal/rdd"
)

// ErrTimeout is returned when the command outlives Options.Timeout.
var ErrTimeout = errors.New("command timed out")

// Options control how a command is executed. Nil streams default to the
// process's own stdio.
type Options struct {
	// Timeout bounds the run. Zero means no limit.
	Timeout time.Duration
	Dir     string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Execute runs cmd directly from its argument vector, without a shell, and
// waits for it to finish.
func Execute(ctx context.Context, cmd rdd.Command, opts Options) error {
	if cmd.Program == "" {
		return fmt.Errorf("no program to run")
	}

	execCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	c := exec.CommandContext(execCtx, cmd.Program, cmd.Argv()...)
	c.Dir = opts.Dir
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	if opts.Stdin != nil {
		c.Stdin = opts.Stdin
	}
	if opts.Stdout != nil {
		c.Stdout = opts.Stdout
	}
	if opts.Stderr != nil {
		c.Stderr = opts.Stderr
	}

	logger.Info("Executing: %s", cmd)
	start := time.Now()
	err := c.Run()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if opts.Timeout > 0 && errors.Is(execCtx.Err(), context.DeadlineExceeded) {
		logger.Warn("Command timed out after %s: %s", opts.Timeout, cmd)
		return fmt.Errorf("%w after %s: %s", ErrTimeout, opts.Timeout, cmd.Program)
	}
	if err != nil {
		logger.Error("Command failed: %v", err)
		return fmt.Errorf("running %s: %w", cmd.Program, err)
	}

	logger.Debug("Command finished in %s", time.Since(start).Round(time.Millisecond))
	return nil
}
