package shutdown

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_RunnerCompletes(t *testing.T) {
	err := Run(
		context.Background(),
		testLogger(),
		time.Second,
		func(ctx context.Context) error { return nil },
	)
	if err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestRun_RunnerError(t *testing.T) {
	wantErr := errors.New("runner failed")

	err := Run(
		context.Background(),
		testLogger(),
		time.Second,
		func(ctx context.Context) error { return wantErr },
	)
	if !errors.Is(err, wantErr) {
		t.Errorf("expected runner error, got %v", err)
	}
}

func TestRun_ContextCancelStopsRunner(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Run(
			ctx,
			testLogger(),
			time.Second,
			func(runCtx context.Context) error {
				<-runCtx.Done()
				return runCtx.Err()
			},
		)
	}()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean exit on context cancel, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancel")
	}
}
