package song_test

import (
	"fmt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/song-catalog/src/server/application"
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
	"github.com/veedubyou/song-catalog/src/shared/testing"
	"net/http"
	"net/http/httptest"
)

var _ = Describe("Song", func() {
	var app *application.App

	BeforeEach(func() {
		app = testing.ExpectSuccess(application.NewApp(testing.ServerConfig()))
	})

	var withKey = testing.RequestModifiers{testing.WithAPIKey(testing.APIKey)}

	var listSongs = func() []songentity.Song {
		response := testing.RequestFactory{
			Method: "GET",
			Target: "/songs",
			Mods:   withKey,
		}.Serve(app)

		Expect(response.Code).To(Equal(http.StatusOK))
		return testing.DecodeJSON[[]songentity.Song](response.Body)
	}

	var createSong = func(payload any) *httptest.ResponseRecorder {
		return testing.RequestFactory{
			Method:  "POST",
			Target:  "/songs",
			JSONObj: payload,
			Mods:    withKey,
		}.Serve(app)
	}

	var deleteSong = func(filter string) *httptest.ResponseRecorder {
		mods := withKey
		if filter != "" {
			mods = append(testing.RequestModifiers{testing.WithQuery("id", filter)}, withKey...)
		}

		return testing.RequestFactory{
			Method: "DELETE",
			Target: "/songs",
			Mods:   mods,
		}.Serve(app)
	}

	It("answers the health check without a key", func() {
		response := testing.RequestFactory{
			Method: "GET",
			Target: "/health-check",
		}.Serve(app)

		Expect(response.Code).To(Equal(http.StatusOK))
	})

	Describe("API key", func() {
		It("rejects requests without a key", func() {
			response := testing.RequestFactory{
				Method: "GET",
				Target: "/songs",
			}.Serve(app)

			Expect(response.Code).To(Equal(http.StatusUnauthorized))
			Expect(testing.DecodeJSONError(response.Body).Code).To(Equal("invalid_api_key"))
		})

		It("rejects requests with the wrong key", func() {
			response := testing.RequestFactory{
				Method: "DELETE",
				Target: "/songs",
				Mods: testing.RequestModifiers{
					testing.WithQuery("id", "eq.whatever"),
					testing.WithAPIKey("not-the-key"),
				},
			}.Serve(app)

			Expect(response.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("List songs", func() {
		It("returns an empty array for an empty catalog", func() {
			response := testing.RequestFactory{
				Method: "GET",
				Target: "/songs",
				Mods:   withKey,
			}.Serve(app)

			Expect(response.Code).To(Equal(http.StatusOK))
			Expect(response.Body.String()).To(MatchJSON(`[]`))
		})
	})

	Describe("Create song", func() {
		It("stores the song", func() {
			song := testing.DemoSong()

			response := createSong(song)
			Expect(response.Code).To(Equal(http.StatusCreated))

			songs := listSongs()
			Expect(songs).To(HaveLen(1))
			Expect(songs[0].Equal(song)).To(BeTrue())
		})

		It("keeps creation order", func() {
			first := testing.DemoSong()
			second := testing.DemoSongWithoutLyrics()
			third := testing.DemoSong()

			for _, song := range []songentity.Song{first, second, third} {
				Expect(createSong(song).Code).To(Equal(http.StatusCreated))
			}

			ids := []string{}
			for _, song := range listSongs() {
				ids = append(ids, song.ID)
			}
			Expect(ids).To(Equal([]string{first.ID, second.ID, third.ID}))
		})

		It("tells absent lyrics apart from empty lyrics", func() {
			absent := testing.DemoSongWithoutLyrics()
			empty := testing.DemoSong()
			empty.Lyrics = songentity.LyricsOf("")

			Expect(createSong(absent).Code).To(Equal(http.StatusCreated))
			Expect(createSong(empty).Code).To(Equal(http.StatusCreated))

			songs := listSongs()
			Expect(songs[0].Lyrics).To(BeNil())
			Expect(songs[1].Lyrics).To(Equal(songentity.LyricsOf("")))
		})

		It("rejects a duplicate ID", func() {
			song := testing.DemoSong()
			Expect(createSong(song).Code).To(Equal(http.StatusCreated))

			response := createSong(song)
			Expect(response.Code).To(Equal(http.StatusConflict))
			Expect(testing.DecodeJSONError(response.Body).Code).To(Equal("song_exists"))
			Expect(listSongs()).To(HaveLen(1))
		})

		DescribeTable("rejects invalid songs",
			func(modify func(song *songentity.Song)) {
				song := testing.DemoSong()
				modify(&song)

				response := createSong(song)
				Expect(response.Code).To(Equal(http.StatusBadRequest))
				Expect(testing.DecodeJSONError(response.Body).Code).To(Equal("bad_song_data"))
				Expect(listSongs()).To(BeEmpty())
			},
			Entry("without an ID", func(song *songentity.Song) { song.ID = "" }),
			Entry("without a title", func(song *songentity.Song) { song.Title = "" }),
			Entry("without a singer", func(song *songentity.Song) { song.Singer = " " }),
			Entry("with a rating too low", func(song *songentity.Song) { song.Rating = 0 }),
			Entry("with a rating too high", func(song *songentity.Song) { song.Rating = 11 }),
		)

		It("rejects a malformed body", func() {
			response := createSong(map[string]any{
				"id":     "some-id",
				"rating": "ten",
			})

			Expect(response.Code).To(Equal(http.StatusBadRequest))
			Expect(testing.DecodeJSONError(response.Body).Code).To(Equal("bad_song_data"))
		})
	})

	Describe("Delete song", func() {
		var song songentity.Song

		BeforeEach(func() {
			song = testing.DemoSong()
			Expect(createSong(song).Code).To(Equal(http.StatusCreated))
		})

		It("removes the song", func() {
			response := deleteSong(fmt.Sprintf("eq.%s", song.ID))

			Expect(response.Code).To(Equal(http.StatusNoContent))
			Expect(listSongs()).To(BeEmpty())
		})

		It("succeeds for a song that doesn't exist", func() {
			response := deleteSong("eq.not-a-song")

			Expect(response.Code).To(Equal(http.StatusNoContent))
			Expect(listSongs()).To(HaveLen(1))
		})

		DescribeTable("rejects filters other than equality",
			func(filter string) {
				response := deleteSong(filter)

				Expect(response.Code).To(Equal(http.StatusBadRequest))
				Expect(testing.DecodeJSONError(response.Body).Code).To(Equal("invalid_filter"))
				Expect(listSongs()).To(HaveLen(1))
			},
			Entry("no filter", ""),
			Entry("no operator", "some-id"),
			Entry("another operator", "neq.some-id"),
			Entry("no value", "eq."),
		)
	})
})
