package cmd

import (
	"fmt"
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
	"io"
	"text/tabwriter"
)

func printSongs(w io.Writer, songs []songentity.Song) error {
	if len(songs) == 0 {
		_, err := fmt.Fprintln(w, "No songs")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSINGER\tRATING")
	for _, song := range songs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", song.ID, song.Title, song.Singer, song.Rating)
	}

	return tw.Flush()
}

func printSong(w io.Writer, song songentity.Song) {
	fmt.Fprintf(w, "ID:     %s\n", song.ID)
	fmt.Fprintf(w, "Title:  %s\n", song.Title)
	fmt.Fprintf(w, "Singer: %s\n", song.Singer)
	fmt.Fprintf(w, "Rating: %d\n", song.Rating)

	if song.Lyrics == nil {
		fmt.Fprintln(w, "\n(no lyrics)")
		return
	}

	fmt.Fprintf(w, "\n%s\n", *song.Lyrics)
}
