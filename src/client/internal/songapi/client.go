package songapi

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/veedubyou/song-catalog/src/shared/lib/cerr"
	"github.com/veedubyou/song-catalog/src/shared/lib/errors/mark"
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	songsPath      = "songs"
	apiKeyParam    = "apikey"
	idFilterParam  = "id"
	maxErrorBody   = 512
	defaultTimeout = 30 * time.Second
)

type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(config Config) Client {
	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}

		httpClient = &http.Client{Timeout: timeout}
	}

	return Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		apiKey:     config.APIKey,
		httpClient: httpClient,
	}
}

func (c Client) ListSongs(ctx context.Context) ([]songentity.Song, error) {
	body, err := c.do(ctx, http.MethodGet, nil, nil)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to list songs")
	}

	songs := []songentity.Song{}
	if err := json.Unmarshal(body, &songs); err != nil {
		err = mark.Wrap(err, RemoteErrorMark, "Failed to decode song list")
		return nil, cerr.Field("body", truncate(body)).Wrap(err).Error("Failed to list songs")
	}

	// a JSON null decodes to a nil slice
	if songs == nil {
		songs = []songentity.Song{}
	}

	return songs, nil
}

// CreateSong submits the song with its client minted ID. The server's
// response body is not used
func (c Client) CreateSong(ctx context.Context, song songentity.Song) error {
	payload, err := json.Marshal(song)
	if err != nil {
		err = mark.Wrap(err, RemoteErrorMark, "Failed to encode song")
		return cerr.Field("song_id", song.ID).Wrap(err).Error("Failed to create song")
	}

	if _, err := c.do(ctx, http.MethodPost, nil, payload); err != nil {
		return cerr.Field("song_id", song.ID).Wrap(err).Error("Failed to create song")
	}

	return nil
}

// DeleteSong deletes by an equality filter on the id column rather than a
// path parameter, which is how the collection expresses row selection
func (c Client) DeleteSong(ctx context.Context, songID string) error {
	filter := url.Values{}
	filter.Set(idFilterParam, EqualityFilter(songID))

	if _, err := c.do(ctx, http.MethodDelete, filter, nil); err != nil {
		return cerr.Field("song_id", songID).Wrap(err).Error("Failed to delete song")
	}

	return nil
}

func EqualityFilter(value string) string {
	return "eq." + value
}

func (c Client) requestURL(extraParams url.Values) string {
	params := url.Values{}
	params.Set(apiKeyParam, c.apiKey)

	for key, values := range extraParams {
		for _, value := range values {
			params.Add(key, value)
		}
	}

	return c.baseURL + "/" + songsPath + "?" + params.Encode()
}

func (c Client) do(ctx context.Context, method string, params url.Values, payload []byte) ([]byte, error) {
	errCtx := cerr.Field("method", method)

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.requestURL(params), body)
	if err != nil {
		err = mark.Wrap(err, RemoteErrorMark, "Failed to build request")
		return nil, errCtx.Wrap(err).Error("Request failed")
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = mark.Wrap(err, RemoteErrorMark, "Failed to reach the song service")
		return nil, errCtx.Wrap(err).Error("Request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = mark.Wrap(err, RemoteErrorMark, "Failed to read response body")
		return nil, errCtx.Field("status", resp.StatusCode).Wrap(err).Error("Request failed")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := mark.Message(RemoteErrorMark, "Unexpected response status "+resp.Status)
		return nil, errCtx.Field("status", resp.StatusCode).
			Field("body", truncate(respBody)).
			Wrap(err).Error("Request failed")
	}

	return respBody, nil
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}

	return string(body)
}
