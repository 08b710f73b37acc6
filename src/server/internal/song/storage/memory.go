package songstorage

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/song-catalog/src/shared/lib/errors/mark"
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
	"sync"
)

// MemoryDB backs the local environment and the tests
type MemoryDB struct {
	mutex sync.Mutex
	songs []songentity.Song
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		songs: []songentity.Song{},
	}
}

func (m *MemoryDB) ListSongs(ctx context.Context) ([]songentity.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, mark.Wrap(err, DefaultErrorMark, "Context is done before listing songs")
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	songs := make([]songentity.Song, 0, len(m.songs))
	for _, song := range m.songs {
		songs = append(songs, song.Clone())
	}

	return songs, nil
}

func (m *MemoryDB) CreateSong(ctx context.Context, song songentity.Song) error {
	if err := ctx.Err(); err != nil {
		return mark.Wrap(err, DefaultErrorMark, "Context is done before creating song")
	}

	if song.ID == "" {
		err := errors.New("Song ID is empty")
		return mark.Wrap(err, DefaultErrorMark, "No ID provided to create song")
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.indexOf(song.ID) >= 0 {
		return mark.Message(SongAlreadyExistsMark, "Cannot create: A song of this ID already exists")
	}

	m.songs = append(m.songs, song.Clone())
	return nil
}

func (m *MemoryDB) DeleteSong(ctx context.Context, songID string) error {
	if err := ctx.Err(); err != nil {
		return mark.Wrap(err, DefaultErrorMark, "Context is done before deleting song")
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	index := m.indexOf(songID)
	if index < 0 {
		return mark.Message(SongNotFoundMark, "Failed to find song to delete")
	}

	m.songs = append(m.songs[:index], m.songs[index+1:]...)
	return nil
}

func (m *MemoryDB) indexOf(songID string) int {
	for i, song := range m.songs {
		if song.ID == songID {
			return i
		}
	}

	return -1
}
