package songstorage

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/song-catalog/src/shared/lib/cerr"
	"github.com/veedubyou/song-catalog/src/shared/lib/dynamo"
	"github.com/veedubyou/song-catalog/src/shared/lib/errors/mark"
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
	"sort"
	"time"
)

const (
	SongsTable            = "Songs"
	newSongCondition      = "attribute_not_exists(" + idKey + ")"
	existingSongCondition = "attribute_exists(" + idKey + ")"
)

type DB struct {
	dynamoDB dynamolib.DynamoDBWrapper
	now      func() time.Time
}

func NewDB(dynamoDB dynamolib.DynamoDBWrapper) DB {
	return DB{
		dynamoDB: dynamoDB,
		now:      time.Now,
	}
}

func (d DB) EnsureTable(ctx context.Context) error {
	return d.dynamoDB.EnsureTable(ctx, SongsTable, dbSong{})
}

// ListSongs scans the whole table. A scan has no order, so songs are
// sorted by creation time afterwards
func (d DB) ListSongs(ctx context.Context) ([]songentity.Song, error) {
	values := []dbSong{}
	err := d.dynamoDB.Table(SongsTable).
		Scan().
		AllWithContext(ctx, &values)

	if err != nil {
		return nil, mark.Wrap(err, DefaultErrorMark, "Failed to scan songs")
	}

	sort.SliceStable(values, func(i, j int) bool {
		if values[i].CreatedAt != values[j].CreatedAt {
			return values[i].CreatedAt < values[j].CreatedAt
		}

		return values[i].ID < values[j].ID
	})

	songs := make([]songentity.Song, 0, len(values))
	for _, value := range values {
		songs = append(songs, value.toEntity())
	}

	return songs, nil
}

func (d DB) CreateSong(ctx context.Context, song songentity.Song) error {
	if song.ID == "" {
		err := errors.New("Song ID is empty")
		return mark.Wrap(err, DefaultErrorMark, "No ID provided to create song")
	}

	err := d.dynamoDB.Table(SongsTable).
		Put(toMap(song, d.now())).
		If(newSongCondition).
		RunWithContext(ctx)

	if err != nil {
		if dynamolib.ConditionalCheckFailed(err) {
			err = mark.Wrap(err,
				SongAlreadyExistsMark,
				"Cannot create: A song of this ID already exists")
			return cerr.Field("song_id", song.ID).Wrap(err).Error("Failed to put song")
		}

		return mark.Wrap(err, DefaultErrorMark, "Failed to put song into DB")
	}

	return nil
}

func (d DB) DeleteSong(ctx context.Context, songID string) error {
	if songID == "" {
		err := errors.New("Song ID is empty")
		return mark.Wrap(err, SongNotFoundMark, "No ID provided to delete song")
	}

	err := d.dynamoDB.Table(SongsTable).
		Delete(idKey, songID).
		If(existingSongCondition).
		RunWithContext(ctx)

	if err != nil {
		if dynamolib.ConditionalCheckFailed(err) {
			return mark.Wrap(err, SongNotFoundMark, "Failed to find song to delete")
		}

		return mark.Wrap(err, DefaultErrorMark, "Failed to delete song")
	}

	return nil
}
