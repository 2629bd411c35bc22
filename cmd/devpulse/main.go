package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/juniarta/devpulse/internal/aggregate"
	"github.com/juniarta/devpulse/internal/config"
	"github.com/juniarta/devpulse/internal/diagfmt"
	"github.com/juniarta/devpulse/internal/feed"
	"github.com/juniarta/devpulse/internal/render"
	"github.com/juniarta/devpulse/internal/shutdown"
	"github.com/juniarta/devpulse/internal/status"
	"github.com/juniarta/devpulse/internal/tui"
	"github.com/juniarta/devpulse/internal/validation"
	"github.com/juniarta/devpulse/internal/watch"
)

var version = "dev"

// snapshotBuffer is the channel buffer between the output store and the TUI.
const snapshotBuffer = 64

func main() {
	logLevel := &slog.LevelVar{}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	viper.SetEnvPrefix("DEVPULSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "devpulse",
		Short: "Build status monitor for a development server",
		Long: `devpulse consolidates the build status of a development server's client
and server compile pipelines, plus page-level validation diagnostics, into
one prioritized status display.

The bundler writes lifecycle events to JSONL feed files; devpulse tails
them and renders the aggregated status to the terminal.`,
		SilenceUsage: true,
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool(FlagVerbose, false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().String(FlagConfig, "", "Config file path (default: .devpulse/config.yaml)")
	rootCmd.PersistentFlags().String(FlagLogFile, "", "Log file path")

	// Bind all flags to viper
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("devpulse %s\n", version)
		},
	}

	// Watch command
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the build feeds and display the aggregated status",
		Long: `Watch tails the client and server pipeline feeds plus the validation
feed and displays one consolidated build status.

A TUI is used automatically when stdout is a terminal; otherwise status
blocks are printed as plain text.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Determine TUI mode: explicit flag > auto-detect from TTY
			tuiEnabled := viper.GetBool(FlagTUI)
			if !cmd.Flags().Changed(FlagTUI) {
				tuiEnabled = term.IsTerminal(int(os.Stdout.Fd()))
			}

			if viper.GetBool(FlagVerbose) {
				logLevel.Set(slog.LevelDebug)
				logger.Debug("verbose logging enabled")
			}

			// Load config from files with defaults
			cfg, err := config.LoadConfig(viper.GetViper())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Apply CLI flag overrides (only if explicitly set)
			if cmd.Flags().Changed(FlagAppURL) {
				cfg.App.URL = viper.GetString(FlagAppURL)
			}
			if cmd.Flags().Changed(FlagClientFeed) {
				cfg.Feeds.Client = viper.GetString(FlagClientFeed)
			}
			if cmd.Flags().Changed(FlagServerFeed) {
				cfg.Feeds.Server = viper.GetString(FlagServerFeed)
			}
			if cmd.Flags().Changed(FlagValidationFeed) {
				cfg.Feeds.Validation = viper.GetString(FlagValidationFeed)
			}

			// TUI mode: redirect logging to a file so it cannot corrupt
			// the display
			runLogger := logger
			var tuiLogResult *TUILoggerResult
			if tuiEnabled {
				tuiLogResult, err = SetupTUILogger(filepath.Dir(cfg.Paths.Log), logLevel, cfg.LogRotation)
				if err != nil {
					return err
				}
				defer func() { _ = tuiLogResult.Close() }()
				runLogger = tuiLogResult.Logger
				slog.SetDefault(runLogger)
			}

			runLogger.Info("devpulse starting",
				"version", version,
				"app_url", cfg.App.URL,
				"client_feed", cfg.Feeds.Client,
				"server_feed", cfg.Feeds.Server,
				"validation_feed", cfg.Feeds.Validation,
			)

			// Core wiring: build store -> aggregator -> output store
			buildStore := status.NewBuildStore()
			agg := aggregate.New(buildStore, runLogger)
			defer agg.Close()

			watcher := watch.New(buildStore, runLogger)
			reporter := validation.NewReporter(buildStore)

			// Feed adapters for the two pipelines and the validator
			clientPipe := feed.NewPipeline(cfg.Feeds.Client, "client", runLogger)
			serverPipe := feed.NewPipeline(cfg.Feeds.Server, "server", runLogger)
			validationFeed := feed.NewValidationFeed(cfg.Feeds.Validation, reporter, runLogger)

			watcher.Watch(clientPipe, serverPipe)

			feedCtx, feedCancel := context.WithCancel(cmd.Context())
			defer feedCancel()

			if err := clientPipe.Start(feedCtx); err != nil {
				return fmt.Errorf("start client feed: %w", err)
			}
			if err := serverPipe.Start(feedCtx); err != nil {
				return fmt.Errorf("start server feed: %w", err)
			}
			if err := validationFeed.Start(feedCtx); err != nil {
				return fmt.Errorf("start validation feed: %w", err)
			}

			stopFeeds := func() {
				feedCancel()
				_ = clientPipe.Stop()
				_ = serverPipe.Stop()
				_ = validationFeed.Stop()
			}

			// Seed the app URL before the first status renders
			agg.StartedDevelopmentServer(cfg.App.URL)

			if tuiEnabled {
				err := runTUI(agg, runLogger)
				stopFeeds()
				return err
			}

			err = runPlain(feedCtx, agg, runLogger)
			stopFeeds()
			return err
		},
	}

	watchCmd.Flags().Bool(FlagTUI, false, "Enable terminal UI (auto-detected by default)")
	watchCmd.Flags().String(FlagAppURL, "", "Development server URL shown in the status")
	watchCmd.Flags().String(FlagClientFeed, "", "Client pipeline feed file")
	watchCmd.Flags().String(FlagServerFeed, "", "Server pipeline feed file")
	watchCmd.Flags().String(FlagValidationFeed, "", "Validation feed file")

	watchCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	// Render command
	renderCmd := &cobra.Command{
		Use:   "render <validation.jsonl>",
		Short: "Format a validation feed file as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := renderValidationFile(args[0])
			if err != nil {
				return err
			}
			fmt.Print(table)
			return nil
		},
	}

	// Register all commands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(renderCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// runTUI runs the terminal UI in the foreground until the user quits.
func runTUI(agg *aggregate.Aggregator, logger *slog.Logger) error {
	snapshots := make(chan status.OutputState, snapshotBuffer)

	// The subscriber may still be mid-notification when the TUI exits, so
	// closing the channel is guarded against a concurrent send.
	var mu sync.Mutex
	closed := false
	unsubscribe := agg.Output().Subscribe(func(st status.OutputState) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case snapshots <- st:
		default:
			// Channel full, drop snapshot; a newer one is on the way.
			logger.Debug("snapshot dropped: TUI channel full")
		}
	})

	tuiApp := tui.New(snapshots)
	err := tuiApp.Run()

	unsubscribe()
	mu.Lock()
	closed = true
	close(snapshots)
	mu.Unlock()
	return err
}

// runPlain prints status blocks until interrupted.
func runPlain(ctx context.Context, agg *aggregate.Aggregator, logger *slog.Logger) error {
	console := render.NewConsole(os.Stdout)
	unsubscribe := agg.Output().Subscribe(console.Render)
	defer unsubscribe()

	// Show whatever is already known before the first change arrives.
	console.Render(agg.Output().State())

	return shutdown.Run(ctx, logger, 5*time.Second, func(runCtx context.Context) error {
		<-runCtx.Done()
		return nil
	})
}

// renderValidationFile reads a validation feed file in full and formats the
// resulting registry.
func renderValidationFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open validation feed: %w", err)
	}
	defer func() { _ = f.Close() }()

	var reg validation.Registry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec feed.Report
		if err := json.Unmarshal(line, &rec); err != nil || rec.Page == "" {
			continue
		}
		reg = reg.WithPage(rec.Page, rec.Errors, rec.Warnings)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read validation feed: %w", err)
	}

	return diagfmt.FormatValidation(reg), nil
}
