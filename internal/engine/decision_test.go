package engine

import (
	"testing"
	"time"

	"drivesync/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	dayLater := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		local        time.Time
		remote       time.Time
		localExists  bool
		remoteExists bool
		want         model.Action
	}{
		{
			name:        "no remote counterpart",
			local:       base,
			localExists: true,
			want:        model.ActionCreate,
		},
		{
			name:         "local strictly newer",
			local:        dayLater,
			remote:       base,
			localExists:  true,
			remoteExists: true,
			want:         model.ActionUpdate,
		},
		{
			name:         "remote strictly newer",
			local:        base,
			remote:       dayLater,
			localExists:  true,
			remoteExists: true,
			want:         model.ActionDownload,
		},
		{
			name:         "equal timestamps",
			local:        base,
			remote:       base,
			localExists:  true,
			remoteExists: true,
			want:         model.ActionSkip,
		},
		{
			name:         "equal at epoch origin",
			local:        time.Unix(0, 0),
			remote:       time.Unix(0, 0).UTC(),
			localExists:  true,
			remoteExists: true,
			want:         model.ActionSkip,
		},
		{
			name:         "sub-second difference is a tie",
			local:        base.Add(400 * time.Millisecond),
			remote:       base.Add(900 * time.Millisecond),
			localExists:  true,
			remoteExists: true,
			want:         model.ActionSkip,
		},
		{
			name:         "differing zones same instant",
			local:        base.In(time.FixedZone("KST", 9*3600)),
			remote:       base,
			localExists:  true,
			remoteExists: true,
			want:         model.ActionSkip,
		},
		{
			name:         "local missing with live remote",
			remote:       base,
			remoteExists: true,
			want:         model.ActionDownload,
		},
		{
			name: "stale id treated as create",
			// remote lookup reported not found even though an ID was set
			local:       base,
			localExists: true,
			want:        model.ActionCreate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.local, tt.remote, tt.localExists, tt.remoteExists)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecideIsIdempotentAfterDownload(t *testing.T) {
	// a download pins the local mtime to the remote one; the follow-up
	// comparison must land on Skip
	remote := time.Date(2024, 6, 1, 12, 30, 45, 123000000, time.UTC)
	local := Normalize(remote)

	assert.Equal(t, model.ActionSkip, Decide(local, remote, true, true))
}
