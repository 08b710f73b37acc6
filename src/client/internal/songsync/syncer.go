package songsync

import (
	"context"
	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/song-catalog/src/client/internal/songstore"
	"github.com/veedubyou/song-catalog/src/shared/lib/cerr"
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . SongAPI
type SongAPI interface {
	ListSongs(ctx context.Context) ([]songentity.Song, error)
	CreateSong(ctx context.Context, song songentity.Song) error
	DeleteSong(ctx context.Context, songID string) error
}

// Syncer sequences remote calls with store mutations. Every operation
// makes its remote call first and only touches the store once that call
// succeeded, so a failure never leaves anything behind locally.
//
// Operations do not lock against each other. A refresh and a create that
// overlap are resolved by whichever store mutation lands last.
type Syncer struct {
	api   SongAPI
	store *songstore.Store
}

func NewSyncer(api SongAPI, store *songstore.Store) Syncer {
	return Syncer{
		api:   api,
		store: store,
	}
}

func (s Syncer) Refresh(ctx context.Context) error {
	logger := log.WithField("operation", "refresh")

	songs, err := s.api.ListSongs(ctx)
	if err != nil {
		return s.fail(logger, err, "Failed to fetch songs")
	}

	if err := s.checkNotCancelled(ctx, logger); err != nil {
		return err
	}

	snapshot := s.store.ReplaceAll(songs)
	logger.WithFields(log.Fields{
		"version": snapshot.Version,
		"count":   snapshot.Len(),
	}).Info("Refreshed songs")

	return nil
}

// Create validates the draft before anything goes over the wire. The ID is
// minted here and the song only becomes visible once the remote accepted it
func (s Syncer) Create(ctx context.Context, draft songentity.Draft) (songentity.Song, error) {
	logger := log.WithField("operation", "create")

	if err := draft.Validate(); err != nil {
		err = errors.Mark(err, InvalidSongMark)
		return songentity.Song{}, s.fail(logger, err, "Refusing to submit an invalid song")
	}

	song := songentity.NewSong(draft)
	logger = logger.WithField("song_id", song.ID)

	if err := s.api.CreateSong(ctx, song); err != nil {
		return songentity.Song{}, s.fail(logger, err, "Failed to create song")
	}

	if err := s.checkNotCancelled(ctx, logger); err != nil {
		return songentity.Song{}, err
	}

	snapshot, err := s.store.Append(song)
	if err != nil {
		return songentity.Song{}, s.fail(logger, err, "Failed to add created song to the store")
	}

	logger.WithField("version", snapshot.Version).Info("Created song")
	return song, nil
}

func (s Syncer) Delete(ctx context.Context, songID string) error {
	logger := log.WithField("operation", "delete").WithField("song_id", songID)

	if err := s.api.DeleteSong(ctx, songID); err != nil {
		return s.fail(logger, err, "Failed to delete song")
	}

	if err := s.checkNotCancelled(ctx, logger); err != nil {
		return err
	}

	snapshot := s.store.RemoveByID(songID)
	logger.WithField("version", snapshot.Version).Info("Deleted song")
	return nil
}

// Find never goes to the remote, it only looks at the current snapshot
func (s Syncer) Find(songID string) (songentity.Song, bool) {
	return s.store.Find(songID)
}

func (s Syncer) Songs() songstore.Snapshot {
	return s.store.Snapshot()
}

func (s Syncer) Subscribe() *songstore.Subscription {
	return s.store.Subscribe()
}

// The remote call may have gone through just before the owner went away.
// The remote side effect stays, the local store is not updated
func (s Syncer) checkNotCancelled(ctx context.Context, logger *log.Entry) error {
	if ctx.Err() == nil {
		return nil
	}

	err := errors.Mark(ctx.Err(), CancelledAfterRemoteMark)
	logger.WithError(err).Warn("Cancelled after the remote call succeeded, local state not updated")
	return errors.Wrap(err, "Operation cancelled before applying the remote result")
}

func (s Syncer) fail(logger *log.Entry, err error, msg string) error {
	err = errors.Wrap(err, msg)
	logger.WithFields(cerr.Fields(err)).WithError(err).Error(msg)
	return err
}
