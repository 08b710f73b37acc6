package songstore

import (
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/song-catalog/src/shared/lib/cerr"
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
	"sync"
)

var ErrDuplicateID = errors.New("duplicate_song_id")

// Store owns the local copy of the song collection. The three mutations
// are the only way to change it, each one is applied atomically and
// published to every subscriber as exactly one new snapshot
type Store struct {
	mutex       sync.Mutex
	current     Snapshot
	subscribers map[*Subscription]struct{}
	closed      bool
}

func NewStore() *Store {
	return &Store{
		current: Snapshot{
			Version: 0,
			Songs:   []songentity.Song{},
		},
		subscribers: map[*Subscription]struct{}{},
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.current.Clone()
}

func (s *Store) Find(songID string) (songentity.Song, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.current.Find(songID)
}

func (s *Store) ReplaceAll(songs []songentity.Song) Snapshot {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.publishLocked(cloneSongs(songs), true)
}

func (s *Store) Append(song songentity.Song) (Snapshot, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.current.Find(song.ID); exists {
		return s.current.Clone(), cerr.Field("song_id", song.ID).
			Wrap(ErrDuplicateID).
			Error("Song with this ID is already in the store")
	}

	songs := make([]songentity.Song, 0, len(s.current.Songs)+1)
	songs = append(songs, s.current.Songs...)
	songs = append(songs, song.Clone())

	return s.publishLocked(songs, s.current.Loaded), nil
}

// RemoveByID removes the first song with a matching ID. A missing ID is not
// an error, the unchanged collection is still published as a new snapshot
func (s *Store) RemoveByID(songID string) Snapshot {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	songs := make([]songentity.Song, 0, len(s.current.Songs))
	removed := false
	for _, song := range s.current.Songs {
		if !removed && song.ID == songID {
			removed = true
			continue
		}

		songs = append(songs, song)
	}

	return s.publishLocked(songs, s.current.Loaded)
}

// Subscribe delivers the current snapshot first and then every later one,
// in version order
func (s *Store) Subscribe() *Subscription {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	sub := newSubscription(s)
	sub.deliver(s.current.Clone())

	if s.closed {
		sub.finish()
		return sub
	}

	s.subscribers[sub] = struct{}{}
	return sub
}

// Close ends every subscription once it has drained what was already
// published. The store itself stays readable and writable
func (s *Store) Close() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.closed = true
	for sub := range s.subscribers {
		sub.finish()
	}

	s.subscribers = map[*Subscription]struct{}{}
}

func (s *Store) unsubscribe(sub *Subscription) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.subscribers, sub)
}

// the songs slice must not be referenced by anyone else
func (s *Store) publishLocked(songs []songentity.Song, loaded bool) Snapshot {
	s.current = Snapshot{
		Version: s.current.Version + 1,
		Songs:   songs,
		Loaded:  loaded,
	}

	for sub := range s.subscribers {
		sub.deliver(s.current.Clone())
	}

	return s.current.Clone()
}
