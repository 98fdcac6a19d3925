package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"drivesync/internal/localfs"
	"drivesync/internal/logger"
	"drivesync/internal/model"
	"drivesync/internal/remote"

	"go.uber.org/zap"
)

// RemoteFactory opens a remote store for one sync group's credentials.
type RemoteFactory func(ctx context.Context, credentialsFile string) (remote.Store, error)

// Recorder receives every per-entry result, typically to persist history.
type Recorder interface {
	Record(result model.SyncResult) error
}

type Summary struct {
	Synced  int
	Skipped int
	Failed  int
	Results []model.SyncResult
}

// Engine walks the manifest sequentially and applies exactly one action
// per entry. Newly created remote IDs are written into the manifest in
// memory; persisting it is the caller's job.
type Engine struct {
	local     localfs.Store
	newRemote RemoteFactory
	recorder  Recorder
}

func New(local localfs.Store, newRemote RemoteFactory, recorder Recorder) *Engine {
	return &Engine{
		local:     local,
		newRemote: newRemote,
		recorder:  recorder,
	}
}

func (e *Engine) Run(ctx context.Context, m *model.Manifest) Summary {
	var sum Summary

	for gi := range m.Details {
		group := &m.Details[gi]

		store, err := e.newRemote(ctx, group.CredentialsFile)
		if err != nil {
			logger.Log.Error("failed to open remote for group",
				zap.Int("group", gi),
				zap.Error(err))

			for fi := range group.Files {
				res := model.SyncResult{
					Group: gi,
					Path:  group.Files[fi].Path,
					Err:   &EntryError{Path: group.Files[fi].Path, Err: err},
				}
				e.collect(&sum, res)
			}

			continue
		}

		for fi := range group.Files {
			res := e.syncEntry(ctx, store, group.RootFolder, &group.Files[fi])
			res.Group = gi
			e.collect(&sum, res)
		}
	}

	return sum
}

func (e *Engine) collect(sum *Summary, res model.SyncResult) {
	sum.Results = append(sum.Results, res)

	switch {
	case res.Err != nil:
		sum.Failed++
		logger.Log.Error("sync failed",
			zap.String("path", res.Path),
			zap.Error(res.Err))
	case res.Action == model.ActionSkip:
		sum.Skipped++
		logger.Log.Debug("in sync",
			zap.String("path", res.Path))
	default:
		sum.Synced++
		logger.Log.Info("synced",
			zap.String("action", string(res.Action)),
			zap.String("path", res.Path),
			zap.String("id", res.RemoteID))
	}

	if e.recorder != nil {
		if err := e.recorder.Record(res); err != nil {
			logger.Log.Warn("failed to record history",
				zap.String("path", res.Path),
				zap.Error(err))
		}
	}
}

func (e *Engine) syncEntry(ctx context.Context, store remote.Store, rootFolder string, entry *model.FileEntry) model.SyncResult {
	res := model.SyncResult{
		Path:     entry.Path,
		RemoteID: entry.RemoteID(),
	}

	localTime, err := e.local.ModifiedTime(entry.Path)
	localExists := err == nil
	if err != nil && !errors.Is(err, localfs.ErrNotFound) {
		res.Err = &EntryError{Path: entry.Path, Err: err}
		return res
	}

	var remoteTime time.Time
	remoteExists := false

	if entry.HasRemote() {
		t, err := store.ModifiedTime(ctx, *entry.ID)
		switch {
		case err == nil:
			remoteTime = t
			remoteExists = true
		case errors.Is(err, remote.ErrNotFound):
			// stale ID, fall through to Create
		default:
			res.Err = &EntryError{Path: entry.Path, Err: err}
			return res
		}
	}

	if !localExists && !remoteExists {
		res.Err = &EntryError{
			Path: entry.Path,
			Err:  errors.New("local file missing and no remote copy exists"),
		}
		return res
	}

	res.Action = Decide(localTime, remoteTime, localExists, remoteExists)

	switch res.Action {
	case model.ActionCreate:
		res.Err = e.create(ctx, store, rootFolder, entry, localTime, &res)
	case model.ActionUpdate:
		res.Err = e.update(ctx, store, entry, localTime)
	case model.ActionDownload:
		res.Err = e.download(ctx, store, entry, remoteTime)
	case model.ActionSkip:
	}

	return res
}

func (e *Engine) create(ctx context.Context, store remote.Store, rootFolder string, entry *model.FileEntry, localTime time.Time, res *model.SyncResult) error {
	f, err := e.local.Open(entry.Path)
	if err != nil {
		return &EntryError{Path: entry.Path, Err: err}
	}

	defer func() {
		_ = f.Close()
	}()

	id, err := store.Create(ctx, rootFolder, entry.Name(), f, localTime)
	if err != nil {
		return &EntryError{Path: entry.Path, Err: err}
	}

	entry.SetID(id)
	res.RemoteID = id
	return nil
}

func (e *Engine) update(ctx context.Context, store remote.Store, entry *model.FileEntry, localTime time.Time) error {
	f, err := e.local.Open(entry.Path)
	if err != nil {
		return &EntryError{Path: entry.Path, Err: err}
	}

	defer func() {
		_ = f.Close()
	}()

	if err := store.Update(ctx, *entry.ID, f, localTime); err != nil {
		return &EntryError{Path: entry.Path, Err: err}
	}

	return nil
}

func (e *Engine) download(ctx context.Context, store remote.Store, entry *model.FileEntry, remoteTime time.Time) error {
	rc, err := store.Download(ctx, *entry.ID)
	if err != nil {
		return &EntryError{Path: entry.Path, Err: err}
	}

	defer func() {
		_ = rc.Close()
	}()

	if err := e.local.WriteAtomic(entry.Path, rc); err != nil {
		return &EntryError{Path: entry.Path, Err: err}
	}

	// Pin the local mtime to the remote one so the next run observes
	// equal timestamps and skips.
	if err := e.local.SetModTime(entry.Path, remoteTime); err != nil {
		return &EntryError{Path: entry.Path, Err: fmt.Errorf("downloaded but %w", err)}
	}

	return nil
}
