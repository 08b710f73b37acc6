package songsync_test

import (
	"context"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/song-catalog/src/client/internal/songstore"
	"github.com/veedubyou/song-catalog/src/client/internal/songsync"
	"github.com/veedubyou/song-catalog/src/client/internal/songsync/songsyncfakes"
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
)

var _ = Describe("Session", func() {
	var (
		api     *songsyncfakes.FakeSongAPI
		store   *songstore.Store
		session *songsync.Session
	)

	BeforeEach(func() {
		api = &songsyncfakes.FakeSongAPI{}
		store = songstore.NewStore()
		session = songsync.NewSession(context.Background(), songsync.NewSyncer(api, store))
	})

	AfterEach(func() {
		session.Close()
		store.Close()
	})

	It("loads the songs when started", func() {
		api.ListSongsReturns([]songentity.Song{song("a", "A")}, nil)

		session.Start()
		session.Wait()

		Expect(api.ListSongsCallCount()).To(Equal(1))
		Expect(session.Songs().IDs()).To(Equal([]string{"a"}))
	})

	It("adds and deletes in the background", func() {
		session.AddSong(songentity.Draft{Title: "T", Singer: "S", Rating: 3})
		session.Wait()

		Expect(session.Songs().Len()).To(Equal(1))
		added := session.Songs().Songs[0]

		found, ok := session.FindSong(added.ID)
		Expect(ok).To(BeTrue())
		Expect(found.Title).To(Equal("T"))

		session.DeleteSong(added.ID)
		session.Wait()
		Expect(session.Songs().Len()).To(BeZero())
	})

	It("swallows failures, leaving the songs as they were", func() {
		api.CreateSongReturns(networkFailure)

		session.AddSong(songentity.Draft{Title: "T", Singer: "S", Rating: 3})
		session.Wait()

		Expect(api.CreateSongCallCount()).To(Equal(1))
		Expect(session.Songs().Len()).To(BeZero())
	})

	It("runs operations independently of each other", func() {
		release := make(chan struct{})
		api.ListSongsCalls(func(ctx context.Context) ([]songentity.Song, error) {
			<-release
			return []songentity.Song{song("from-refresh", "R")}, nil
		})

		session.Refresh()
		session.AddSong(songentity.Draft{Title: "T", Singer: "S", Rating: 3})

		Eventually(func() int { return session.Songs().Len() }).Should(Equal(1))
		Expect(api.CreateSongCallCount()).To(Equal(1))

		close(release)
		session.Wait()

		// last writer wins: the refresh landed after the create
		Expect(session.Songs().IDs()).To(Equal([]string{"from-refresh"}))
	})

	It("cancels in-flight tasks on Close and leaves the store alone", func() {
		started := make(chan struct{})
		api.ListSongsCalls(func(ctx context.Context) ([]songentity.Song, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		})

		session.Refresh()
		Eventually(started).Should(BeClosed())
		session.Close()

		Expect(session.Songs().Version).To(BeZero())
	})

	It("lets launches and Wait run side by side", func() {
		api.ListSongsReturns(nil, nil)

		launched := make(chan struct{})
		go func() {
			defer close(launched)
			for i := 0; i < 20; i++ {
				session.Refresh()
			}
		}()

		for i := 0; i < 5; i++ {
			session.Wait()
		}

		Eventually(launched).Should(BeClosed())
		session.Wait()
		Expect(api.ListSongsCallCount()).To(Equal(20))
	})

	It("releases a blocked Wait when closed", func() {
		api.ListSongsCalls(func(ctx context.Context) ([]songentity.Song, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
		session.Refresh()

		waited := make(chan struct{})
		go func() {
			defer close(waited)
			session.Wait()
		}()

		Consistently(waited, "50ms").ShouldNot(BeClosed())
		session.Close()
		Eventually(waited).Should(BeClosed())
	})

	It("ignores work launched after Close", func() {
		session.Close()
		session.Refresh()
		session.Wait()

		Expect(api.ListSongsCallCount()).To(BeZero())
	})
})
