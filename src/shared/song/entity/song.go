package songentity

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/veedubyou/song-catalog/src/shared/lib/cerr"
	"github.com/veedubyou/song-catalog/src/shared/lib/errors/mark"
	"strings"
)

const (
	MinRating = 1
	MaxRating = 10
)

var InvalidSongMark = errors.New("songentity_invalid_song")

type Song struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Singer string  `json:"singer"`
	Rating int     `json:"rating"`
	Lyrics *string `json:"lyrics"`
}

// Draft is what a user fills in before a song gets an ID
type Draft struct {
	Title  string
	Singer string
	Rating int
	Lyrics *string
}

// NewSong mints the ID on the client side. The remote collection
// never assigns IDs, so this one is authoritative for the song's lifetime
func NewSong(draft Draft) Song {
	song := Song{
		Title:  draft.Title,
		Singer: draft.Singer,
		Rating: draft.Rating,
		Lyrics: copyLyrics(draft.Lyrics),
	}

	song.CreateID()
	return song
}

func LyricsOf(lyrics string) *string {
	return &lyrics
}

func (s Song) IsNew() bool {
	return s.ID == ""
}

func (s *Song) CreateID() {
	if !s.IsNew() {
		panic("CreateID is called without an IsNew check")
	}

	s.ID = uuid.New().String()
}

func (s Song) Draft() Draft {
	return Draft{
		Title:  s.Title,
		Singer: s.Singer,
		Rating: s.Rating,
		Lyrics: copyLyrics(s.Lyrics),
	}
}

// Clone returns a song that shares no memory with s
func (s Song) Clone() Song {
	s.Lyrics = copyLyrics(s.Lyrics)
	return s
}

func (s Song) Equal(other Song) bool {
	if s.ID != other.ID || s.Title != other.Title || s.Singer != other.Singer || s.Rating != other.Rating {
		return false
	}

	if s.Lyrics == nil || other.Lyrics == nil {
		return s.Lyrics == nil && other.Lyrics == nil
	}

	return *s.Lyrics == *other.Lyrics
}

func (s Song) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return mark.Message(InvalidSongMark, "Song ID is empty")
	}

	if err := s.Draft().Validate(); err != nil {
		return cerr.Field("song_id", s.ID).Wrap(err).Error("Song failed validation")
	}

	return nil
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return mark.Message(InvalidSongMark, "Title is empty")
	}

	if strings.TrimSpace(d.Singer) == "" {
		return mark.Message(InvalidSongMark, "Singer is empty")
	}

	if d.Rating < MinRating || d.Rating > MaxRating {
		err := mark.Message(InvalidSongMark, "Rating is out of range")
		return cerr.Field("rating", d.Rating).Wrap(err).Error("Invalid rating")
	}

	return nil
}

func copyLyrics(lyrics *string) *string {
	if lyrics == nil {
		return nil
	}

	copied := *lyrics
	return &copied
}
