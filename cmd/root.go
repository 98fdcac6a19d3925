package cmd

import (
	"context"
	"fmt"
	"os"

	"drivesync/internal/auth"
	"drivesync/internal/config"
	"drivesync/internal/db"
	"drivesync/internal/engine"
	"drivesync/internal/localfs"
	"drivesync/internal/logger"
	"drivesync/internal/remote"
	"drivesync/internal/repository"

	"github.com/spf13/cobra"
)

var (
	cfg   *config.Config
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "drivesync",
	Short: "Sync declared local files with Google Drive",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		logger.Init(debug)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		// add only edits the manifest, no history involved
		if cmd.Name() != "add" {
			if err := db.Init(cfg.DBPath); err != nil {
				return err
			}
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func daemonURL(path string) string {
	return fmt.Sprintf("http://localhost:%d%s", cfg.DaemonPort, path)
}

func newEngine() *engine.Engine {
	factory := func(ctx context.Context, credentialsFile string) (remote.Store, error) {
		svc, err := auth.NewDriveService(ctx, credentialsFile)
		if err != nil {
			return nil, err
		}

		return remote.NewDriveStore(svc), nil
	}

	return engine.New(localfs.NewOSStore(), factory, repository.NewHistoryRepository())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug mode")
}
