package songgateway

import "github.com/veedubyou/song-catalog/src/server/internal/errors/gateway"

// interface check
var _ = []gateway.GatewayError{
	BadSongDataError{},
	InvalidFilterError{},
	SongExistsError{},
}

func NewBadSongDataError(err error) BadSongDataError {
	return BadSongDataError{
		ErrorMsger: gateway.NewErrorMsger("The song data received was malformed or incomplete", err),
	}
}

type BadSongDataError struct {
	gateway.BadRequestStatus
	gateway.ErrorMsger
}

func (BadSongDataError) Code() string { return "bad_song_data" }

func NewInvalidFilterError(err error) InvalidFilterError {
	return InvalidFilterError{
		ErrorMsger: gateway.NewErrorMsger("Deletes need an id filter of the form id=eq.<id>", err),
	}
}

type InvalidFilterError struct {
	gateway.BadRequestStatus
	gateway.ErrorMsger
}

func (InvalidFilterError) Code() string { return "invalid_filter" }

func NewSongExistsError(err error) SongExistsError {
	return SongExistsError{
		ErrorMsger: gateway.NewErrorMsger("A song with this ID already exists", err),
	}
}

type SongExistsError struct {
	gateway.ConflictStatus
	gateway.ErrorMsger
}

func (SongExistsError) Code() string { return "song_exists" }
