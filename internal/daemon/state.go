package daemon

import (
	"sync"
	"time"

	"drivesync/internal/engine"
)

type Status struct {
	StartedAt time.Time  `json:"started_at"`
	Runs      int        `json:"runs"`
	Synced    int        `json:"synced"`
	Skipped   int        `json:"skipped"`
	Failed    int        `json:"failed"`
	Entries   int        `json:"entries"`
	LastSync  *time.Time `json:"last_sync"`
}

// Tracker accumulates pass summaries for the /status endpoint. Watch
// mode runs passes from timers and fs events, so it takes a lock even
// though passes themselves never overlap.
type Tracker struct {
	mu     sync.Mutex
	status Status
}

func NewTracker(entries int) *Tracker {
	return &Tracker{
		status: Status{
			StartedAt: time.Now(),
			Entries:   entries,
		},
	}
}

func (t *Tracker) Apply(sum engine.Summary) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.status.Runs++
	t.status.Synced += sum.Synced
	t.status.Skipped += sum.Skipped
	t.status.Failed += sum.Failed
	t.status.LastSync = &now
}

func (t *Tracker) Snapshot() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}
