package engine

import "fmt"

// EntryError marks a failure scoped to one file entry. It is reported
// and the run moves on; it never aborts the pass.
type EntryError struct {
	Path string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %s: %v", e.Path, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
