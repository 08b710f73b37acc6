package gateway

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/veedubyou/song-catalog/src/server/api_error"
	"github.com/veedubyou/song-catalog/src/shared/lib/cerr"
	"net/http"
)

func ErrorResponse(c echo.Context, s GatewayError) error {
	if s.StatusCode() >= http.StatusInternalServerError {
		cerr.Log(s.Cause())
	}

	return c.JSON(s.StatusCode(), api_error.JSONAPIError{
		Code: s.Code(),
		Msg:  s.Msg(),
	})
}

type GatewayError interface {
	StatusCode() int
	Code() string
	Msg() string
	Cause() error
}

func NewErrorMsger(message string, err error) ErrorMsger {
	return ErrorMsger{
		Message: message,
		Err:     err,
	}
}

type ErrorMsger struct {
	Message string
	Err     error
}

func (m ErrorMsger) Msg() string {
	err := errors.Wrap(m.Err, m.Message)
	return err.Error()
}

func (m ErrorMsger) Cause() error {
	return m.Err
}

type BadRequestStatus struct{}

func (BadRequestStatus) StatusCode() int { return http.StatusBadRequest }

type UnauthorizedStatus struct{}

func (UnauthorizedStatus) StatusCode() int { return http.StatusUnauthorized }

type ConflictStatus struct{}

func (ConflictStatus) StatusCode() int { return http.StatusConflict }

type InternalErrorStatus struct{}

func (InternalErrorStatus) StatusCode() int { return http.StatusInternalServerError }
