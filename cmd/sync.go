package cmd

import (
	"fmt"

	"drivesync/internal/logger"
	"drivesync/internal/manifest"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one sync pass over the manifest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		m, err := manifest.Load(cfg.ManifestPath)
		if err != nil {
			return err
		}

		sum := newEngine().Run(cmd.Context(), m)

		if err := manifest.Save(cfg.ManifestPath, m); err != nil {
			return err
		}

		fmt.Printf("done: %d synced, %d skipped, %d failed\n",
			sum.Synced, sum.Skipped, sum.Failed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
