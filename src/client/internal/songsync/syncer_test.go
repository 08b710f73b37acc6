package songsync_test

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/markers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/song-catalog/src/client/internal/songapi"
	"github.com/veedubyou/song-catalog/src/client/internal/songstore"
	"github.com/veedubyou/song-catalog/src/client/internal/songsync"
	"github.com/veedubyou/song-catalog/src/client/internal/songsync/songsyncfakes"
	"github.com/veedubyou/song-catalog/src/shared/lib/errors/mark"
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
)

var networkFailure = mark.Message(songapi.RemoteErrorMark, "connection reset by peer")

func song(id string, title string) songentity.Song {
	return songentity.Song{
		ID:     id,
		Title:  title,
		Singer: "singer",
		Rating: 7,
	}
}

var _ = Describe("Syncer", func() {
	var (
		ctx    context.Context
		api    *songsyncfakes.FakeSongAPI
		store  *songstore.Store
		syncer songsync.Syncer
	)

	BeforeEach(func() {
		ctx = context.Background()
		api = &songsyncfakes.FakeSongAPI{}
		store = songstore.NewStore()
		syncer = songsync.NewSyncer(api, store)
	})

	AfterEach(func() {
		store.Close()
	})

	Describe("Refresh", func() {
		BeforeEach(func() {
			store.ReplaceAll([]songentity.Song{song("old", "Old")})
		})

		Describe("when the remote answers", func() {
			BeforeEach(func() {
				api.ListSongsReturns([]songentity.Song{song("b", "B"), song("a", "A")}, nil)
			})

			It("replaces the store with exactly the remote list, in order", func() {
				Expect(syncer.Refresh(ctx)).To(Succeed())
				Expect(syncer.Songs().IDs()).To(Equal([]string{"b", "a"}))
			})

			It("makes one list call", func() {
				Expect(syncer.Refresh(ctx)).To(Succeed())
				Expect(api.ListSongsCallCount()).To(Equal(1))
			})
		})

		Describe("when the remote fails", func() {
			BeforeEach(func() {
				api.ListSongsReturns(nil, networkFailure)
			})

			It("leaves the store identical", func() {
				before := syncer.Songs()

				err := syncer.Refresh(ctx)
				Expect(songapi.IsRemoteError(err)).To(BeTrue())
				Expect(syncer.Songs()).To(Equal(before))
			})

			It("does not retry", func() {
				_ = syncer.Refresh(ctx)
				Expect(api.ListSongsCallCount()).To(Equal(1))
			})
		})
	})

	Describe("Create", func() {
		var draft songentity.Draft

		BeforeEach(func() {
			store.ReplaceAll([]songentity.Song{song("a", "X")})
			draft = songentity.Draft{
				Title:  "Y",
				Singer: "Someone",
				Rating: 4,
				Lyrics: songentity.LyricsOf("words"),
			}
		})

		Describe("when the remote accepts", func() {
			It("appends exactly one song with the submitted ID", func() {
				before := syncer.Songs()

				created, err := syncer.Create(ctx, draft)
				Expect(err).NotTo(HaveOccurred())

				Expect(api.CreateSongCallCount()).To(Equal(1))
				_, submitted := api.CreateSongArgsForCall(0)
				Expect(submitted.ID).NotTo(BeEmpty())
				Expect(submitted.Equal(created)).To(BeTrue())

				_, existedBefore := before.Find(submitted.ID)
				Expect(existedBefore).To(BeFalse())

				after := syncer.Songs()
				Expect(after.IDs()).To(Equal([]string{"a", submitted.ID}))
				Expect(after.Songs[1].Equal(submitted)).To(BeTrue())
				Expect(after.Songs[:1]).To(Equal(before.Songs))
			})

			It("carries the draft fields", func() {
				created, err := syncer.Create(ctx, draft)
				Expect(err).NotTo(HaveOccurred())
				Expect(created.Title).To(Equal("Y"))
				Expect(created.Singer).To(Equal("Someone"))
				Expect(created.Rating).To(Equal(4))
				Expect(*created.Lyrics).To(Equal("words"))
			})

			It("mints the ID before submission", func() {
				api.CreateSongCalls(func(_ context.Context, submitted songentity.Song) error {
					Expect(submitted.ID).NotTo(BeEmpty())
					_, visible := store.Find(submitted.ID)
					Expect(visible).To(BeFalse())
					return nil
				})

				_, err := syncer.Create(ctx, draft)
				Expect(err).NotTo(HaveOccurred())
			})
		})

		Describe("when the remote fails", func() {
			BeforeEach(func() {
				api.CreateSongReturns(networkFailure)
			})

			It("leaves the store identical and drops the provisional song", func() {
				before := syncer.Songs()

				_, err := syncer.Create(ctx, draft)
				Expect(songapi.IsRemoteError(err)).To(BeTrue())
				Expect(syncer.Songs()).To(Equal(before))
			})
		})

		Describe("with an invalid draft", func() {
			BeforeEach(func() {
				draft.Title = ""
			})

			It("does not call the remote or touch the store", func() {
				before := syncer.Songs()

				_, err := syncer.Create(ctx, draft)
				Expect(markers.Is(err, songsync.InvalidSongMark)).To(BeTrue())
				Expect(markers.Is(err, songentity.InvalidSongMark)).To(BeTrue())
				Expect(api.CreateSongCallCount()).To(BeZero())
				Expect(syncer.Songs()).To(Equal(before))
			})

			It("keeps its own mark apart from the entity mark", func() {
				err := mark.Message(songentity.InvalidSongMark, "Title is empty")
				Expect(markers.Is(err, songsync.InvalidSongMark)).To(BeFalse())
			})
		})
	})

	Describe("Delete", func() {
		BeforeEach(func() {
			store.ReplaceAll([]songentity.Song{song("a", "A"), song("b", "B")})
		})

		It("removes the matching song after the remote confirms", func() {
			Expect(syncer.Delete(ctx, "a")).To(Succeed())

			_, deletedID := api.DeleteSongArgsForCall(0)
			Expect(deletedID).To(Equal("a"))
			Expect(syncer.Songs().IDs()).To(Equal([]string{"b"}))
		})

		It("keeps the songs unchanged when nothing matched", func() {
			before := syncer.Songs()
			Expect(syncer.Delete(ctx, "zzz")).To(Succeed())
			Expect(syncer.Songs().Songs).To(Equal(before.Songs))
		})

		It("keeps the entry when the remote fails", func() {
			api.DeleteSongReturns(networkFailure)
			before := syncer.Songs()

			err := syncer.Delete(ctx, "a")
			Expect(songapi.IsRemoteError(err)).To(BeTrue())
			Expect(syncer.Songs()).To(Equal(before))
		})

		It("does not change the store on a second delete the remote rejects", func() {
			api.DeleteSongReturnsOnCall(1, mark.Message(songapi.RemoteErrorMark, "not found"))

			Expect(syncer.Delete(ctx, "a")).To(Succeed())
			afterFirst := syncer.Songs()

			Expect(syncer.Delete(ctx, "a")).NotTo(Succeed())
			Expect(syncer.Songs()).To(Equal(afterFirst))
			Expect(afterFirst.IDs()).To(Equal([]string{"b"}))
		})
	})

	Describe("Find", func() {
		BeforeEach(func() {
			store.ReplaceAll([]songentity.Song{song("a", "A")})
		})

		It("reads the current snapshot without a remote call", func() {
			found, ok := syncer.Find("a")
			Expect(ok).To(BeTrue())
			Expect(found.Title).To(Equal("A"))
			Expect(api.Invocations()).To(BeEmpty())
		})

		It("reports absence for an unknown ID", func() {
			_, ok := syncer.Find("unknown")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Cancellation after the remote call", func() {
		It("skips the local mutation", func() {
			cancelCtx, cancel := context.WithCancel(ctx)
			api.DeleteSongCalls(func(_ context.Context, _ string) error {
				cancel()
				return nil
			})
			store.ReplaceAll([]songentity.Song{song("a", "A")})
			before := syncer.Songs()

			err := syncer.Delete(cancelCtx, "a")
			Expect(markers.Is(err, songsync.CancelledAfterRemoteMark)).To(BeTrue())
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
			Expect(syncer.Songs()).To(Equal(before))
		})
	})

	Describe("Scenarios", func() {
		It("appends on create: [a] + b = [a, b]", func() {
			store.ReplaceAll([]songentity.Song{song("a", "X")})
			created, err := syncer.Create(ctx, songentity.Draft{Title: "Y", Singer: "S", Rating: 1})
			Expect(err).NotTo(HaveOccurred())

			snapshot := syncer.Songs()
			Expect(snapshot.Len()).To(Equal(2))
			Expect(snapshot.Songs[0].Title).To(Equal("X"))
			Expect(snapshot.Songs[1].ID).To(Equal(created.ID))
			Expect(snapshot.Songs[1].Title).To(Equal("Y"))
		})

		It("removes on delete: [a, b] - a = [b]", func() {
			store.ReplaceAll([]songentity.Song{song("a", "A"), song("b", "B")})
			Expect(syncer.Delete(ctx, "a")).To(Succeed())
			Expect(syncer.Songs().IDs()).To(Equal([]string{"b"}))
		})

		It("keeps whatever was there when refresh hits a network error", func() {
			store.ReplaceAll([]songentity.Song{song("a", "A")})
			api.ListSongsReturns(nil, networkFailure)

			before := syncer.Songs()
			Expect(syncer.Refresh(ctx)).NotTo(Succeed())
			Expect(syncer.Songs()).To(Equal(before))
		})
	})

	Describe("Subscribe", func() {
		It("sees one snapshot per successful operation", func() {
			sub := syncer.Subscribe()
			defer sub.Close()
			Eventually(sub.C()).Should(Receive())

			api.ListSongsReturns([]songentity.Song{song("a", "A")}, nil)
			Expect(syncer.Refresh(ctx)).To(Succeed())

			api.DeleteSongReturns(networkFailure)
			Expect(syncer.Delete(ctx, "a")).NotTo(Succeed())

			var snapshot songstore.Snapshot
			Eventually(sub.C()).Should(Receive(&snapshot))
			Expect(snapshot.IDs()).To(Equal([]string{"a"}))
			Consistently(sub.C()).ShouldNot(Receive())
		})
	})
})
