package cmd

import (
	"errors"
	"fmt"
	"os"

	"drivesync/internal/manifest"
	"drivesync/internal/model"

	"github.com/spf13/cobra"
)

var (
	addCredentials string
	addRoot        string
	addGroup       int
)

var addCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Add a file entry to the sync manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		m, err := manifest.Load(cfg.ManifestPath)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			m = &model.Manifest{}
		}

		for _, group := range m.Details {
			for _, entry := range group.Files {
				if entry.Path == path {
					return fmt.Errorf("%s is already declared", path)
				}
			}
		}

		switch {
		case addCredentials != "" || addRoot != "":
			if addCredentials == "" || addRoot == "" {
				return errors.New("--credentials and --root must be given together")
			}

			m.Details = append(m.Details, model.SyncGroup{
				CredentialsFile: addCredentials,
				RootFolder:      addRoot,
				Files:           []model.FileEntry{{Path: path}},
			})

		case addGroup >= 0:
			if addGroup >= len(m.Details) {
				return fmt.Errorf("group %d does not exist", addGroup)
			}

			m.Details[addGroup].Files = append(m.Details[addGroup].Files,
				model.FileEntry{Path: path})

		case len(m.Details) > 0:
			last := len(m.Details) - 1
			m.Details[last].Files = append(m.Details[last].Files,
				model.FileEntry{Path: path})

		default:
			return errors.New("manifest has no groups, pass --credentials and --root to create one")
		}

		if err := manifest.Save(cfg.ManifestPath, m); err != nil {
			return err
		}

		fmt.Printf("added %s to %s\n", path, cfg.ManifestPath)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addCredentials, "credentials", "", "Service account key file for a new group")
	addCmd.Flags().StringVar(&addRoot, "root", "", "Drive root folder ID for a new group")
	addCmd.Flags().IntVar(&addGroup, "group", -1, "Existing group index to add to")
	rootCmd.AddCommand(addCmd)
}
