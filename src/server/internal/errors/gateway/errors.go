package gateway

// interface check
var _ = []GatewayError{
	InternalError{},
	InvalidAPIKeyError{},
}

func NewInternalError(err error) InternalError {
	return InternalError{
		ErrorMsger: NewErrorMsger("Something unexpected happened. It's not your fault, it's ours. But it might not be fixed until we find it.", err),
	}
}

type InternalError struct {
	InternalErrorStatus
	ErrorMsger
}

func (InternalError) Code() string { return "internal_error" }

func NewInvalidAPIKeyError(err error) InvalidAPIKeyError {
	return InvalidAPIKeyError{
		ErrorMsger: NewErrorMsger("The API key is missing or wrong", err),
	}
}

type InvalidAPIKeyError struct {
	UnauthorizedStatus
	ErrorMsger
}

func (InvalidAPIKeyError) Code() string { return "invalid_api_key" }
