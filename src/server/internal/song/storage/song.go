package songstorage

import (
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
	"time"
)

const (
	idKey        = "id"
	titleKey     = "title"
	singerKey    = "singer"
	ratingKey    = "rating"
	lyricsKey    = "lyrics"
	createdAtKey = "createdAt"
)

// dbSong doubles as the table schema for CreateTable
type dbSong struct {
	ID        string  `dynamo:"id,hash"`
	Title     string  `dynamo:"title"`
	Singer    string  `dynamo:"singer"`
	Rating    int     `dynamo:"rating"`
	Lyrics    *string `dynamo:"lyrics"`
	CreatedAt int64   `dynamo:"createdAt"`
}

func (d dbSong) toEntity() songentity.Song {
	return songentity.Song{
		ID:     d.ID,
		Title:  d.Title,
		Singer: d.Singer,
		Rating: d.Rating,
		Lyrics: d.Lyrics,
	}
}

// toMap leaves lyrics out when they are absent, and keeps them as an
// empty string when they are empty
func toMap(song songentity.Song, createdAt time.Time) map[string]any {
	item := map[string]any{
		idKey:        song.ID,
		titleKey:     song.Title,
		singerKey:    song.Singer,
		ratingKey:    song.Rating,
		createdAtKey: createdAt.UnixNano(),
	}

	if song.Lyrics != nil {
		item[lyricsKey] = *song.Lyrics
	}

	return item
}
