package testing

import (
	"github.com/google/uuid"
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
)

// DemoSong is valid and has never been saved anywhere
func DemoSong() songentity.Song {
	return songentity.Song{
		ID:     uuid.New().String(),
		Title:  "Bohemian Rhapsody",
		Singer: "Queen",
		Rating: 10,
		Lyrics: songentity.LyricsOf("Is this the real life?\nIs this just fantasy?"),
	}
}

func DemoSongWithoutLyrics() songentity.Song {
	song := DemoSong()
	song.Title = "Take Five"
	song.Singer = "Dave Brubeck"
	song.Lyrics = nil
	return song
}
