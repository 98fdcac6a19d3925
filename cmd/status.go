package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"drivesync/internal/daemon"
	"drivesync/internal/repository"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := http.Get(daemonURL("/status"))
		if err == nil {
			defer func(Body io.ReadCloser) {
				_ = Body.Close()
			}(resp.Body)

			var st daemon.Status
			if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
				return fmt.Errorf("failed to decode status response: %w", err)
			}

			lastSync := "-"
			if st.LastSync != nil {
				lastSync = st.LastSync.Format("2006-01-02 15:04:05")
			}

			fmt.Printf("watching %d files, up %s\n",
				st.Entries, time.Since(st.StartedAt).Round(time.Second))
			fmt.Printf("runs: %d  synced: %d  skipped: %d  failed: %d\n",
				st.Runs, st.Synced, st.Skipped, st.Failed)
			fmt.Printf("last sync: %s\n", lastSync)
			return nil
		}

		// no daemon running, fall back to stored history
		repo := repository.NewHistoryRepository()
		stats, err := repo.GetStats()
		if err != nil {
			return err
		}

		fmt.Printf("total: %d  success: %d  failed: %d\n",
			stats.Total, stats.Success, stats.Failed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
