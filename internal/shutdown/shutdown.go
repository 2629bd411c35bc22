// Package shutdown handles graceful termination on SIGINT/SIGTERM.
package shutdown

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Run executes runner until it returns, the parent context is canceled, or
// a termination signal arrives. On a signal the runner's context is
// canceled and Run waits up to timeout for it to wind down; a
// context.Canceled result from the runner is treated as a clean exit.
func Run(ctx context.Context, logger *slog.Logger, timeout time.Duration, runner func(ctx context.Context) error) error {
	runCtx, runCancel := context.WithCancel(ctx)
	defer runCancel()

	runDone := make(chan error, 1)
	go func() {
		runDone <- runner(runCtx)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		logger.Info("received signal, shutting down", "signal", sig)
		runCancel()

		select {
		case err := <-runDone:
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
		case <-time.After(timeout):
			logger.Warn("shutdown timeout exceeded")
		}

		logger.Info("shutdown complete")
		return nil

	case err := <-runDone:
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
}
