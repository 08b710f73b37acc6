package songstorage

import (
	"context"
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
)

var _ Store = DB{}
var _ Store = &MemoryDB{}

// Store keeps songs in the order they were created
type Store interface {
	ListSongs(ctx context.Context) ([]songentity.Song, error)
	CreateSong(ctx context.Context, song songentity.Song) error
	DeleteSong(ctx context.Context, songID string) error
}
