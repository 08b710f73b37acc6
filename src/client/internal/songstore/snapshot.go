package songstore

import "github.com/veedubyou/song-catalog/src/shared/song/entity"

// Snapshot is the whole collection at one point in time. Every mutation of
// the store produces a new snapshot with the next version
type Snapshot struct {
	Version uint64
	Songs   []songentity.Song
	// Loaded is set once the whole collection was replaced, i.e. by a
	// refresh, and stays set for every later snapshot
	Loaded bool
}

func (s Snapshot) Len() int {
	return len(s.Songs)
}

func (s Snapshot) Find(songID string) (songentity.Song, bool) {
	for _, song := range s.Songs {
		if song.ID == songID {
			return song.Clone(), true
		}
	}

	return songentity.Song{}, false
}

func (s Snapshot) IDs() []string {
	ids := make([]string, len(s.Songs))
	for i, song := range s.Songs {
		ids[i] = song.ID
	}

	return ids
}

func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Version: s.Version,
		Songs:   cloneSongs(s.Songs),
		Loaded:  s.Loaded,
	}
}

func cloneSongs(songs []songentity.Song) []songentity.Song {
	cloned := make([]songentity.Song, len(songs))
	for i, song := range songs {
		cloned[i] = song.Clone()
	}

	return cloned
}
