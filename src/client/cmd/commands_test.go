package cmd_test

import (
	"bytes"
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"
	"github.com/veedubyou/song-catalog/src/client/application"
	"github.com/veedubyou/song-catalog/src/client/cmd"
	"github.com/veedubyou/song-catalog/src/client/internal/songsync/songsyncfakes"
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
)

var _ = Describe("songs command", func() {
	var (
		v   *viper.Viper
		api *songsyncfakes.FakeSongAPI
		out *bytes.Buffer
	)

	run := func(args ...string) error {
		rootCmd := cmd.NewRootCmd(v, application.Deps{API: api})
		rootCmd.SetOut(out)
		rootCmd.SetErr(out)
		rootCmd.SetArgs(args)
		return rootCmd.Execute()
	}

	BeforeEach(func() {
		v = application.NewViper()
		v.Set(application.APIURLKey, "http://localhost")
		v.Set(application.APIKeyKey, "key")
		api = &songsyncfakes.FakeSongAPI{}
		out = &bytes.Buffer{}

		lyrics := "la la la"
		api.ListSongsReturns([]songentity.Song{
			{ID: "id-1", Title: "Yesterday", Singer: "The Beatles", Rating: 9, Lyrics: &lyrics},
			{ID: "id-2", Title: "Hurt", Singer: "Johnny Cash", Rating: 10},
		}, nil)
	})

	It("refuses to run without an API key", func() {
		v.Set(application.APIKeyKey, "")

		Expect(run("list")).To(MatchError(ContainSubstring("SONGS_API_KEY")))
		Expect(api.ListSongsCallCount()).To(Equal(0))
	})

	Describe("list", func() {
		It("prints every song", func() {
			Expect(run("list")).To(Succeed())

			Expect(out.String()).To(ContainSubstring("Yesterday"))
			Expect(out.String()).To(ContainSubstring("Johnny Cash"))
		})

		It("reports an empty catalog", func() {
			api.ListSongsReturns(nil, nil)

			Expect(run("list")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("No songs"))
		})

		It("fails when the remote fails", func() {
			api.ListSongsReturns(nil, errors.New("boom"))

			Expect(run("list")).To(HaveOccurred())
		})
	})

	Describe("show", func() {
		It("prints the song with lyrics", func() {
			Expect(run("show", "id-1")).To(Succeed())

			Expect(out.String()).To(ContainSubstring("Yesterday"))
			Expect(out.String()).To(ContainSubstring("la la la"))
		})

		It("notes missing lyrics", func() {
			Expect(run("show", "id-2")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("(no lyrics)"))
		})

		It("fails for an unknown id", func() {
			Expect(run("show", "nope")).To(MatchError(ContainSubstring("not found")))
		})
	})

	Describe("add", func() {
		It("creates the song remotely", func() {
			Expect(run("add", "--title", "Creep", "--singer", "Radiohead", "--rating", "8", "--lyrics", "")).To(Succeed())

			Expect(api.CreateSongCallCount()).To(Equal(1))
			_, created := api.CreateSongArgsForCall(0)
			Expect(created.ID).NotTo(BeEmpty())
			Expect(created.Title).To(Equal("Creep"))
			Expect(created.Lyrics).NotTo(BeNil())
			Expect(*created.Lyrics).To(Equal(""))
			Expect(out.String()).To(ContainSubstring(created.ID))
		})

		It("leaves lyrics absent when the flag is not given", func() {
			Expect(run("add", "--title", "Creep", "--singer", "Radiohead", "--rating", "8")).To(Succeed())

			_, created := api.CreateSongArgsForCall(0)
			Expect(created.Lyrics).To(BeNil())
		})

		It("rejects an out of range rating without calling the remote", func() {
			Expect(run("add", "--title", "Creep", "--singer", "Radiohead", "--rating", "11")).To(HaveOccurred())
			Expect(api.CreateSongCallCount()).To(Equal(0))
		})
	})

	Describe("delete", func() {
		It("deletes the song remotely", func() {
			Expect(run("delete", "id-2")).To(Succeed())

			Expect(api.DeleteSongCallCount()).To(Equal(1))
			_, id := api.DeleteSongArgsForCall(0)
			Expect(id).To(Equal("id-2"))
			Expect(out.String()).To(ContainSubstring("Deleted id-2"))
		})

		It("requires an id", func() {
			Expect(run("delete")).To(HaveOccurred())
			Expect(api.DeleteSongCallCount()).To(Equal(0))
		})
	})
})
