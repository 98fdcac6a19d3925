package model

type SyncResult struct {
	Group    int
	Path     string
	RemoteID string
	Action   Action
	Err      error
}
