package application

import (
	"context"
	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/song-catalog/src/client/internal/songapi"
	"github.com/veedubyou/song-catalog/src/client/internal/songarchive"
	"github.com/veedubyou/song-catalog/src/client/internal/songstore"
	"github.com/veedubyou/song-catalog/src/client/internal/songsync"
	"sync"
	"time"
)

// App owns the one store of the process and everything wired to it
type App struct {
	store  *songstore.Store
	syncer songsync.Syncer

	archiveCancel       context.CancelFunc
	archiveDone         sync.WaitGroup
	archiveDrainTimeout time.Duration
	fileStore           *songarchive.GoogleFileStore
}

// Deps are the outside collaborators of the app. Anything left nil is
// built from the config
type Deps struct {
	API       songsync.SongAPI
	FileStore songarchive.FileStore
}

func NewApp(config Config) (*App, error) {
	return NewAppWithDeps(config, Deps{})
}

func NewAppWithDeps(config Config, deps Deps) (*App, error) {
	api := deps.API
	if api == nil {
		api = songapi.NewClient(songapi.Config{
			BaseURL: config.APIBaseURL,
			APIKey:  config.APIKey,
			Timeout: config.HTTPTimeout,
		})
	}

	store := songstore.NewStore()
	app := &App{
		store:               store,
		syncer:              songsync.NewSyncer(api, store),
		archiveDrainTimeout: config.archiveDrainTimeout(),
	}

	if config.ArchiveEnabled() {
		if err := app.startArchiver(config, deps.FileStore); err != nil {
			store.Close()
			return nil, errors.Wrap(err, "Failed to start snapshot archiver")
		}
	}

	return app, nil
}

func (a *App) Syncer() songsync.Syncer {
	return a.syncer
}

func (a *App) NewSession(ctx context.Context) *songsync.Session {
	return songsync.NewSession(ctx, a.syncer)
}

// Close lets the archiver drain what was already published, for up to the
// drain timeout, before it stops
func (a *App) Close() error {
	a.store.Close()

	drained := make(chan struct{})
	go func() {
		a.archiveDone.Wait()
		close(drained)
	}()

	select {
	case <-drained:
	case <-time.After(a.archiveDrainTimeout):
		log.WithField("timeout", a.archiveDrainTimeout).
			Warn("Snapshot archiver did not drain in time, cancelling pending writes")
	}

	if a.archiveCancel != nil {
		a.archiveCancel()
	}
	<-drained

	if a.fileStore != nil {
		if err := a.fileStore.Close(); err != nil {
			return errors.Wrap(err, "Failed to close cloud storage client")
		}
	}

	return nil
}

func (a *App) startArchiver(config Config, fileStore songarchive.FileStore) error {
	ctx, cancel := context.WithCancel(context.Background())

	if fileStore == nil {
		storageConfig := config.ArchiveStorage()
		googleFileStore, err := songarchive.NewGoogleFileStore(ctx, storageConfig.GetBucket(), storageConfig.ClientOptions()...)
		if err != nil {
			cancel()
			return err
		}

		a.fileStore = googleFileStore
		fileStore = googleFileStore
	}

	a.archiveCancel = cancel
	archiver := songarchive.NewArchiver(fileStore, config.ArchivePrefix)
	sub := a.store.Subscribe()

	a.archiveDone.Add(1)
	go func() {
		defer a.archiveDone.Done()
		defer sub.Close()

		if err := archiver.Run(ctx, sub); err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Error("Snapshot archiver stopped")
		}
	}()

	return nil
}
