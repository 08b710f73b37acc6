package songusecase

import (
	"context"
	"github.com/apex/log"
	"github.com/cockroachdb/errors/markers"
	"github.com/pkg/errors"
	"github.com/veedubyou/song-catalog/src/server/internal/song/events"
	"github.com/veedubyou/song-catalog/src/server/internal/song/storage"
	"github.com/veedubyou/song-catalog/src/shared/lib/errors/mark"
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
)

type Usecase struct {
	db       songstorage.Store
	notifier songevents.Notifier
}

func NewUsecase(db songstorage.Store, notifier songevents.Notifier) Usecase {
	return Usecase{
		db:       db,
		notifier: notifier,
	}
}

func (u Usecase) ListSongs(ctx context.Context) ([]songentity.Song, error) {
	songs, err := u.db.ListSongs(ctx)
	if err != nil {
		return nil, mark.Wrap(err, DefaultErrorMark, "Failed to list songs from DB")
	}

	return songs, nil
}

// CreateSong stores a song whose ID was minted by the client
func (u Usecase) CreateSong(ctx context.Context, song songentity.Song) error {
	if err := song.Validate(); err != nil {
		return mark.Wrap(err, InvalidSongMark, "The song is invalid")
	}

	err := u.db.CreateSong(ctx, song)
	if err != nil {
		err = errors.Wrap(err, "Failed to create the song in the DB")

		switch {
		case markers.Is(err, songstorage.SongAlreadyExistsMark):
			return mark.Wrap(err, SongExistsMark, "A song with this ID already exists")
		default:
			return mark.Wrap(err, DefaultErrorMark, "Unknown error: Failed to create the song")
		}
	}

	u.notifier.SongCreated(ctx, song)
	return nil
}

// DeleteSong succeeds for songs that don't exist, the same way a filtered
// delete that matches no rows succeeds
func (u Usecase) DeleteSong(ctx context.Context, songID string) error {
	err := u.db.DeleteSong(ctx, songID)
	if err != nil {
		if markers.Is(err, songstorage.SongNotFoundMark) {
			log.WithField("song_id", songID).Debug("Delete matched no song")
			return nil
		}

		return mark.Wrap(err, DefaultErrorMark, "Unknown error: Failed to delete the song")
	}

	u.notifier.SongDeleted(ctx, songID)
	return nil
}
