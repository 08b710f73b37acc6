package songsync

import "github.com/cockroachdb/errors"

var (
	InvalidSongMark          = errors.New("songsync_invalid_song")
	CancelledAfterRemoteMark = errors.New("songsync_cancelled_after_remote")
)
