package songsync

import (
	"context"
	"github.com/veedubyou/song-catalog/src/client/internal/songstore"
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
	"sync"
)

// Session runs sync operations in the background for the lifetime of one
// owner, e.g. a screen. Failures are only logged by the Syncer. Closing the
// session cancels whatever is still in flight
type Session struct {
	syncer Syncer
	ctx    context.Context
	cancel context.CancelFunc

	mutex  sync.Mutex
	closed bool
	tasks  sync.WaitGroup
}

func NewSession(parent context.Context, syncer Syncer) *Session {
	ctx, cancel := context.WithCancel(parent)
	return &Session{
		syncer: syncer,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start loads the collection once, the way a freshly opened list does
func (s *Session) Start() {
	s.Refresh()
}

func (s *Session) Refresh() {
	s.launch(func(ctx context.Context) {
		_ = s.syncer.Refresh(ctx)
	})
}

func (s *Session) AddSong(draft songentity.Draft) {
	s.launch(func(ctx context.Context) {
		_, _ = s.syncer.Create(ctx, draft)
	})
}

func (s *Session) DeleteSong(songID string) {
	s.launch(func(ctx context.Context) {
		_ = s.syncer.Delete(ctx, songID)
	})
}

func (s *Session) FindSong(songID string) (songentity.Song, bool) {
	return s.syncer.Find(songID)
}

func (s *Session) Songs() songstore.Snapshot {
	return s.syncer.Songs()
}

func (s *Session) Subscribe() *songstore.Subscription {
	return s.syncer.Subscribe()
}

// Wait blocks until every launched task has returned. Launches made while
// waiting block until Wait returns
func (s *Session) Wait() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.tasks.Wait()
}

// Close cancels in-flight tasks and waits for them. A task whose remote
// call already succeeded keeps its remote effect but skips the store
// update. Tasks launched after Close are ignored
func (s *Session) Close() {
	// cancel first so a concurrent Wait can return
	s.cancel()

	s.mutex.Lock()
	s.closed = true
	s.mutex.Unlock()

	s.tasks.Wait()
}

func (s *Session) launch(task func(ctx context.Context)) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed || s.ctx.Err() != nil {
		return
	}

	s.tasks.Add(1)
	go func() {
		defer s.tasks.Done()
		task(s.ctx)
	}()
}
