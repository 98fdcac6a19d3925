package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"drivesync/internal/model"
	"drivesync/internal/util"
)

// Load reads and validates the sync manifest. Any failure here is fatal
// for the whole run; per-entry problems are handled later by the engine.
func Load(path string) (*model.Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m model.Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if err := validate(&m); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	return &m, nil
}

// Save persists the manifest atomically. The engine is the only writer,
// and the only field it ever changes is a file entry's remote ID.
func Save(path string, m *model.Manifest) error {
	b, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	if err := util.AtomicWrite(path, bytes.NewReader(append(b, '\n'))); err != nil {
		return fmt.Errorf("failed to save manifest %s: %w", path, err)
	}

	return nil
}

func validate(m *model.Manifest) error {
	for gi, group := range m.Details {
		if group.CredentialsFile == "" {
			return fmt.Errorf("group %d: credentials_file is empty", gi)
		}

		if group.RootFolder == "" {
			return fmt.Errorf("group %d: root_folder is empty", gi)
		}

		for fi, entry := range group.Files {
			if entry.Path == "" {
				return fmt.Errorf("group %d: file %d: path is empty", gi, fi)
			}
		}
	}

	return nil
}
