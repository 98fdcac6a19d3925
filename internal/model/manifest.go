package model

import "path/filepath"

// Manifest is the persisted sync declaration. Details is the on-disk
// field name and must stay stable.
type Manifest struct {
	Details []SyncGroup `json:"details"`
}

// SyncGroup binds a set of files to one service account and one Drive
// root folder.
type SyncGroup struct {
	CredentialsFile string      `json:"credentials_file"`
	RootFolder      string      `json:"root_folder"`
	Files           []FileEntry `json:"files"`
}

// FileEntry declares one local file and its Drive counterpart. A nil ID
// means the file has never been uploaded.
type FileEntry struct {
	Path string  `json:"path"`
	ID   *string `json:"id"`
}

func (e *FileEntry) HasRemote() bool {
	return e.ID != nil && *e.ID != ""
}

func (e *FileEntry) SetID(id string) {
	e.ID = &id
}

func (e *FileEntry) RemoteID() string {
	if e.ID == nil {
		return ""
	}

	return *e.ID
}

// Name is the filename used on the Drive side.
func (e *FileEntry) Name() string {
	return filepath.Base(e.Path)
}
