package cmd

import (
	"fmt"

	"drivesync/internal/model"
	"drivesync/internal/repository"

	"github.com/spf13/cobra"
)

var historyN int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View recent sync results",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := repository.NewHistoryRepository()
		histories, err := repo.GetRecent(historyN)
		if err != nil {
			return err
		}

		if len(histories) == 0 {
			fmt.Println("no history yet")
			return nil
		}

		for _, h := range histories {
			status := "✓"
			if h.Status == model.StatusFailed {
				status = "✗"
			}

			fmt.Printf("%s [%s] %-8s %s\n",
				status,
				h.SyncedAt.Format("2006-01-02 15:04:05"),
				h.Action,
				h.Path,
			)
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyN, "n", 20, "number of history entries to show")
	rootCmd.AddCommand(historyCmd)
}
