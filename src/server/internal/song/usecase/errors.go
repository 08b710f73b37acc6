package songusecase

import "github.com/cockroachdb/errors"

var InvalidSongMark = errors.New("songusecase_invalid_song")
var SongExistsMark = errors.New("songusecase_song_exists")
var DefaultErrorMark = errors.New("songusecase_default_error")
