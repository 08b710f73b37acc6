package songgateway

import (
	"github.com/cockroachdb/errors/markers"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/veedubyou/song-catalog/src/server/internal/errors/gateway"
	"github.com/veedubyou/song-catalog/src/server/internal/lib/request"
	"github.com/veedubyou/song-catalog/src/server/internal/song/usecase"
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
	"net/http"
	"strings"
)

const (
	idFilterParam    = "id"
	equalityOperator = "eq."
)

type Gateway struct {
	usecase songusecase.Usecase
}

func NewGateway(usecase songusecase.Usecase) Gateway {
	return Gateway{
		usecase: usecase,
	}
}

func (g Gateway) ListSongs(c echo.Context) error {
	ctx := request.Context(c)

	songs, err := g.usecase.ListSongs(ctx)
	if err != nil {
		return gateway.ErrorResponse(c, gateway.NewInternalError(err))
	}

	return c.JSON(http.StatusOK, songs)
}

func (g Gateway) CreateSong(c echo.Context) error {
	ctx := request.Context(c)

	song := songentity.Song{}
	err := c.Bind(&song)
	if err != nil {
		err = errors.Wrap(err, "Failed to bind request body to song object")
		return gateway.ErrorResponse(c, NewBadSongDataError(err))
	}

	err = g.usecase.CreateSong(ctx, song)
	if err != nil {
		switch {
		case markers.Is(err, songusecase.InvalidSongMark):
			return gateway.ErrorResponse(c, NewBadSongDataError(err))
		case markers.Is(err, songusecase.SongExistsMark):
			return gateway.ErrorResponse(c, NewSongExistsError(err))
		default:
			return gateway.ErrorResponse(c, gateway.NewInternalError(err))
		}
	}

	return c.NoContent(http.StatusCreated)
}

func (g Gateway) DeleteSong(c echo.Context) error {
	ctx := request.Context(c)

	songID, err := parseIDFilter(c.QueryParam(idFilterParam))
	if err != nil {
		return gateway.ErrorResponse(c, NewInvalidFilterError(err))
	}

	err = g.usecase.DeleteSong(ctx, songID)
	if err != nil {
		return gateway.ErrorResponse(c, gateway.NewInternalError(err))
	}

	return c.NoContent(http.StatusNoContent)
}

// parseIDFilter only understands equality, the one operator the client uses
func parseIDFilter(filter string) (string, error) {
	if filter == "" {
		return "", errors.New("No id filter given, refusing to delete every song")
	}

	songID, ok := strings.CutPrefix(filter, equalityOperator)
	if !ok {
		return "", errors.Errorf("Unsupported id filter %q", filter)
	}

	if songID == "" {
		return "", errors.New("The id filter has no value")
	}

	return songID, nil
}
