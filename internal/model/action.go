package model

// Action is the single operation chosen for one file entry per run.
type Action string

const (
	ActionCreate   Action = "CREATE"
	ActionUpdate   Action = "UPDATE"
	ActionDownload Action = "DOWNLOAD"
	ActionSkip     Action = "SKIP"
)
