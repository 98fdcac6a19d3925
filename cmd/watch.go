package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"drivesync/internal/daemon"
	"drivesync/internal/engine"
	"drivesync/internal/logger"
	"drivesync/internal/manifest"
	"drivesync/internal/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Sync continuously on local changes and a remote poll interval",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	defer logger.Sync()

	m, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		return err
	}

	var paths []string
	for _, group := range m.Details {
		for _, entry := range group.Files {
			paths = append(paths, entry.Path)
		}
	}

	eng := newEngine()
	tracker := daemon.NewTracker(len(paths))

	// One pass at a time. Timers, fs events and the daemon API may all
	// ask for a pass concurrently, but the manifest has a single writer.
	var runMu sync.Mutex
	runPass := func() engine.Summary {
		runMu.Lock()
		defer runMu.Unlock()

		sum := eng.Run(context.Background(), m)
		tracker.Apply(sum)

		if err := manifest.Save(cfg.ManifestPath, m); err != nil {
			logger.Log.Error("failed to save manifest", zap.Error(err))
		}

		return sum
	}

	runPass()

	w, err := watch.New(cfg.BufferSize)
	if err != nil {
		return err
	}

	if err := w.Watch(paths); err != nil {
		return err
	}

	changes := watch.Debounce(w.Events(), time.Duration(cfg.DebounceMs)*time.Millisecond)

	srv := daemon.NewServer(tracker, runPass, cfg.DaemonPort)
	srv.Start()

	ticker := time.NewTicker(time.Duration(cfg.PollIntervalSec) * time.Second)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	logger.Log.Info("drivesync watching",
		zap.Int("files", len(paths)),
		zap.Int("port", cfg.DaemonPort))

	for {
		select {
		case path := <-changes:
			logger.Log.Debug("change triggered sync",
				zap.String("path", path))
			runPass()

		case <-ticker.C:
			runPass()

		case sig := <-sigCh:
			logger.Log.Info("shutting down",
				zap.String("signal", sig.String()))

			w.Stop()

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Stop(ctx)
		}
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
