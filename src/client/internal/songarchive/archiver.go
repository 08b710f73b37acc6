package songarchive

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/veedubyou/song-catalog/src/client/internal/songstore"
	"github.com/veedubyou/song-catalog/src/shared/lib/cerr"
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
	"path"
	"time"
)

const LatestFileName = "latest.json"

type archivedSnapshot struct {
	RunID      string            `json:"runId"`
	Version    uint64            `json:"version"`
	ArchivedAt time.Time         `json:"archivedAt"`
	Songs      []songentity.Song `json:"songs"`
}

// Archiver copies snapshots into a file store, one versioned file per
// snapshot plus a latest.json that is overwritten. Versions restart with
// every process, so versioned files live under a directory per run
type Archiver struct {
	fileStore FileStore
	prefix    string
	runID     string
	now       func() time.Time
}

func NewArchiver(fileStore FileStore, prefix string) Archiver {
	return Archiver{
		fileStore: fileStore,
		prefix:    prefix,
		runID:     newRunID(time.Now()),
		now:       time.Now,
	}
}

func newRunID(startedAt time.Time) string {
	return startedAt.UTC().Format("20060102T150405Z") + "-" + uuid.NewString()[:8]
}

func (a Archiver) RunID() string {
	return a.runID
}

func SnapshotPath(prefix string, runID string, version uint64) string {
	return path.Join(prefix, runID, fmt.Sprintf("snapshot-%010d.json", version))
}

// Run archives until the context is done or the subscription closes.
// Snapshots from before the first refresh only hold local changes and are
// skipped. A snapshot that fails to archive is logged and skipped
func (a Archiver) Run(ctx context.Context, sub *songstore.Subscription) error {
	log.WithField("prefix", a.prefix).
		WithField("run_id", a.runID).
		Info("Starting snapshot archiver")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case snapshot, ok := <-sub.C():
			if !ok {
				return nil
			}

			if !snapshot.Loaded {
				log.WithField("version", snapshot.Version).Debug("Skipping snapshot that was never refreshed")
				continue
			}

			if err := a.Archive(ctx, snapshot); err != nil {
				cerr.Log(err)
			}
		}
	}
}

func (a Archiver) Archive(ctx context.Context, snapshot songstore.Snapshot) error {
	errCtx := cerr.Field("version", snapshot.Version).Field("prefix", a.prefix)

	contents, err := json.Marshal(archivedSnapshot{
		RunID:      a.runID,
		Version:    snapshot.Version,
		ArchivedAt: a.now().UTC(),
		Songs:      snapshot.Songs,
	})
	if err != nil {
		return errCtx.Wrap(err).Error("Failed to encode snapshot")
	}

	versionedPath := SnapshotPath(a.prefix, a.runID, snapshot.Version)
	if err := a.fileStore.WriteFile(ctx, versionedPath, contents); err != nil {
		return errCtx.Field("path", versionedPath).Wrap(err).Error("Failed to archive snapshot")
	}

	latestPath := path.Join(a.prefix, LatestFileName)
	if err := a.fileStore.WriteFile(ctx, latestPath, contents); err != nil {
		return errCtx.Field("path", latestPath).Wrap(err).Error("Failed to update latest snapshot")
	}

	log.WithField("version", snapshot.Version).
		WithField("count", snapshot.Len()).
		WithField("run_id", a.runID).
		Debug("Archived snapshot")

	return nil
}
