package engine

import (
	"time"

	"drivesync/internal/model"
)

// Granularity is the precision both sides are reduced to before
// comparison. Drive reports milliseconds while local filesystems range
// from whole seconds to nanoseconds; whole seconds is the coarsest
// common basis, and anything finer makes a download flip back into an
// update on the next run.
const Granularity = time.Second

func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(Granularity)
}

// Decide picks the single action for one entry. remoteExists is false
// when the entry has no remote ID or the lookup reported not found;
// localExists is false when the local file is missing. Equal timestamps
// always yield Skip so that a clean second run is a no-op.
func Decide(local, remote time.Time, localExists, remoteExists bool) model.Action {
	if !remoteExists {
		return model.ActionCreate
	}

	if !localExists {
		return model.ActionDownload
	}

	l, r := Normalize(local), Normalize(remote)

	switch {
	case l.After(r):
		return model.ActionUpdate
	case r.After(l):
		return model.ActionDownload
	default:
		return model.ActionSkip
	}
}
