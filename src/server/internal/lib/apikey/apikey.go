package apikey

import (
	"crypto/subtle"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/veedubyou/song-catalog/src/server/internal/errors/gateway"
)

// QueryParam carries the key on every request, the way PostgREST
// gateways expect it
const QueryParam = "apikey"

func Middleware(apiKey string) echo.MiddlewareFunc {
	expected := []byte(apiKey)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			given := c.QueryParam(QueryParam)
			if given == "" {
				err := errors.New("No apikey query parameter found")
				return gateway.ErrorResponse(c, gateway.NewInvalidAPIKeyError(err))
			}

			if subtle.ConstantTimeCompare([]byte(given), expected) != 1 {
				err := errors.New("The apikey query parameter doesn't match")
				return gateway.ErrorResponse(c, gateway.NewInvalidAPIKeyError(err))
			}

			return next(c)
		}
	}
}
