package testing

import (
	"bytes"
	"encoding/json"
	"github.com/labstack/echo/v4"
	"github.com/onsi/gomega"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
)

type RequestModifier func(r *http.Request)

type RequestModifiers []RequestModifier

func (r *RequestModifiers) Add(mods ...RequestModifier) {
	*r = append(*r, mods...)
}

func WithQuery(key string, value string) RequestModifier {
	return func(request *http.Request) {
		query := request.URL.Query()
		query.Set(key, value)
		request.URL.RawQuery = query.Encode()
	}
}

func WithAPIKey(apiKey string) RequestModifier {
	return WithQuery("apikey", apiKey)
}

type RequestFactory struct {
	Method  string
	Target  string
	JSONObj interface{}
	Mods    RequestModifiers
}

func (r RequestFactory) make(reqMaker func(string, string, io.Reader) *http.Request) *http.Request {
	var body io.Reader

	if r.JSONObj != nil {
		buf := &bytes.Buffer{}
		err := json.NewEncoder(buf).Encode(r.JSONObj)
		gomega.ExpectWithOffset(2, err).NotTo(gomega.HaveOccurred())

		body = buf
	}

	request := reqMaker(r.Method, r.Target, body)

	isJSONBody := body != nil
	if isJSONBody {
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	for _, mod := range r.Mods {
		mod(request)
	}

	return request
}

func (r RequestFactory) MakeFake() *http.Request {
	return r.make(httptest.NewRequest)
}

// Serve runs the request through handler and records the response
func (r RequestFactory) Serve(handler http.Handler) *httptest.ResponseRecorder {
	response := httptest.NewRecorder()
	handler.ServeHTTP(response, r.MakeFake())
	return response
}

func (r RequestFactory) Do(baseURL string) (*http.Response, error) {
	target, err := url.JoinPath(baseURL, r.Target)
	gomega.ExpectWithOffset(1, err).NotTo(gomega.HaveOccurred())

	makeRealRequest := func(method string, target string, body io.Reader) *http.Request {
		request, err := http.NewRequest(method, target, body)
		gomega.ExpectWithOffset(3, err).NotTo(gomega.HaveOccurred())
		return request
	}

	factory := r
	factory.Target = target
	req := factory.make(makeRealRequest)
	return http.DefaultClient.Do(req)
}

func PrepareEchoContext(request *http.Request, response http.ResponseWriter) echo.Context {
	e := echo.New()
	return e.NewContext(request, response)
}
