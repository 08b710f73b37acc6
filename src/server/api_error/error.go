package api_error

// JSONAPIError is the body of every non-2xx response of the song server
type JSONAPIError struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
