package application

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/veedubyou/song-catalog/src/server/internal/lib/apikey"
	"github.com/veedubyou/song-catalog/src/server/internal/song/events"
	"github.com/veedubyou/song-catalog/src/server/internal/song/gateway"
	"github.com/veedubyou/song-catalog/src/server/internal/song/storage"
	"github.com/veedubyou/song-catalog/src/server/internal/song/usecase"
	"github.com/veedubyou/song-catalog/src/shared/config"
	"github.com/veedubyou/song-catalog/src/shared/lib/dynamo"
	"github.com/veedubyou/song-catalog/src/shared/lib/rabbitmq"
	"net/http"
	"time"
)

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	DELETE HTTPMethod = "DELETE"
)

const setupTimeout = 30 * time.Second

type App struct {
	echo      *echo.Echo
	port      string
	publisher *rabbitmq.QueuePublisher
}

type Config struct {
	// songs live in memory when there is neither a SongStore nor a DynamoConfig
	SongStore    songstorage.Store
	DynamoConfig config.Dynamo

	// events are not published when RabbitMQURL is empty
	RabbitMQURL       string
	RabbitMQQueueName string

	APIKey             string
	CORSAllowedOrigins []string
	Port               string
	Log                bool
}

func NewApp(config Config) (*App, error) {
	if config.APIKey == "" {
		return nil, errors.New("An API key is required to serve songs")
	}

	e := echo.New()
	e.HideBanner = true

	if config.Log {
		e.Use(middleware.Logger())
	}

	corsMiddleware := makeCorsMiddleware(config)
	apiKeyMiddleware := apikey.Middleware(config.APIKey)

	handleRoute := func(method HTTPMethod, path string, handlerFunc echo.HandlerFunc, middlewares ...echo.MiddlewareFunc) {
		middlewares = append([]echo.MiddlewareFunc{corsMiddleware}, middlewares...)

		e.OPTIONS(path, handlerFunc, corsMiddleware)

		switch method {
		case GET:
			e.GET(path, handlerFunc, middlewares...)
		case POST:
			e.POST(path, handlerFunc, middlewares...)
		case DELETE:
			e.DELETE(path, handlerFunc, middlewares...)
		default:
			panic("unhandled http method!")
		}
	}

	songStore, err := makeSongStore(config)
	if err != nil {
		return nil, err
	}

	app := &App{
		echo: e,
		port: config.Port,
	}

	notifier, err := app.makeNotifier(config)
	if err != nil {
		return nil, err
	}

	songGateway := songgateway.NewGateway(songusecase.NewUsecase(songStore, notifier))

	// health check
	handleRoute(GET, "/health-check", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// song routes
	handleRoute(GET, "/songs", songGateway.ListSongs, apiKeyMiddleware)
	handleRoute(POST, "/songs", songGateway.CreateSong, apiKeyMiddleware)
	handleRoute(DELETE, "/songs", songGateway.DeleteSong, apiKeyMiddleware)

	return app, nil
}

// ServeHTTP lets tests drive the app without binding a port
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.echo.ServeHTTP(w, r)
}

func (a *App) Start() error {
	err := a.echo.Start(a.port)
	if err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "Couldn't start echo server")
	}

	return nil
}

func (a *App) Stop() error {
	if a.publisher != nil {
		a.publisher.Close()
	}

	err := a.echo.Close()
	if err != nil {
		return errors.Wrap(err, "Failed to stop echo server")
	}

	return nil
}

func makeSongStore(appConfig Config) (songstorage.Store, error) {
	if appConfig.SongStore != nil {
		return appConfig.SongStore, nil
	}

	if appConfig.DynamoConfig == nil {
		return songstorage.NewMemoryDB(), nil
	}

	db := songstorage.NewDB(dynamolib.Open(appConfig.DynamoConfig))

	// dynamodb-local starts empty every time
	if _, isLocal := appConfig.DynamoConfig.(config.LocalDynamo); isLocal {
		ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
		defer cancel()

		if err := db.EnsureTable(ctx); err != nil {
			return nil, errors.Wrap(err, "Failed to set up the songs table")
		}
	}

	return db, nil
}

func (a *App) makeNotifier(config Config) (songevents.Notifier, error) {
	if config.RabbitMQURL == "" {
		return songevents.NopNotifier{}, nil
	}

	publisher, err := rabbitmq.NewQueuePublisher(config.RabbitMQURL, config.RabbitMQQueueName)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create rabbitMQ publisher")
	}

	a.publisher = publisher
	return songevents.NewQueueNotifier(publisher), nil
}

func makeCorsMiddleware(config Config) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: config.CORSAllowedOrigins,
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	})
}
