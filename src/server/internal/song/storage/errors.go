package songstorage

import "github.com/cockroachdb/errors"

var SongNotFoundMark = errors.New("songstorage_song_not_found")
var SongAlreadyExistsMark = errors.New("songstorage_song_already_exists")
var DefaultErrorMark = errors.New("songstorage_default_error")
