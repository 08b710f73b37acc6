package songapi

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/markers"
)

// RemoteErrorMark is on every error the client returns: network failures,
// non-2xx responses and undecodable bodies alike. Callers are not expected
// to tell them apart
var RemoteErrorMark = errors.New("songapi_remote_error")

func IsRemoteError(err error) bool {
	return markers.Is(err, RemoteErrorMark)
}
