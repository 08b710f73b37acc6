package application_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"
	"github.com/veedubyou/song-catalog/src/client/application"
	sharedconfig "github.com/veedubyou/song-catalog/src/shared/config"
	"time"
)

var _ = Describe("LoadConfig", func() {
	var v *viper.Viper

	BeforeEach(func() {
		v = application.NewViper()
		v.Set(application.APIURLKey, "https://songs.example.com/rest/v1")
		v.Set(application.APIKeyKey, "secret")
	})

	It("loads the values with defaults", func() {
		config, err := application.LoadConfig(v)
		Expect(err).NotTo(HaveOccurred())

		Expect(config.APIBaseURL).To(Equal("https://songs.example.com/rest/v1"))
		Expect(config.APIKey).To(Equal("secret"))
		Expect(config.HTTPTimeout).To(Equal(30 * time.Second))
		Expect(config.ArchivePrefix).To(Equal("song-snapshots"))
		Expect(config.ArchiveDrainTimeout).To(Equal(application.DefaultArchiveDrainTimeout))
		Expect(config.ArchiveEnabled()).To(BeFalse())
	})

	It("enables archiving once a bucket is set", func() {
		v.Set(application.ArchiveBucketKey, "snapshots")

		config, err := application.LoadConfig(v)
		Expect(err).NotTo(HaveOccurred())
		Expect(config.ArchiveEnabled()).To(BeTrue())
	})

	It("requires the base URL", func() {
		v.Set(application.APIURLKey, "")

		_, err := application.LoadConfig(v)
		Expect(err).To(MatchError(ContainSubstring("SONGS_API_URL")))
	})

	It("requires the API key", func() {
		v.Set(application.APIKeyKey, "")

		_, err := application.LoadConfig(v)
		Expect(err).To(MatchError(ContainSubstring("SONGS_API_KEY")))
	})

	It("rejects a non positive timeout", func() {
		v.Set(application.HTTPTimeoutKey, "0s")

		_, err := application.LoadConfig(v)
		Expect(err).To(MatchError(ContainSubstring("SONGS_HTTP_TIMEOUT")))
	})

	Describe("archive storage", func() {
		BeforeEach(func() {
			v.Set(application.ArchiveBucketKey, "snapshots")
		})

		It("uses the real service by default", func() {
			v.Set(application.ArchiveCredsKey, "/secrets/sa.json")

			config, err := application.LoadConfig(v)
			Expect(err).NotTo(HaveOccurred())
			Expect(config.ArchiveStorage()).To(Equal(sharedconfig.ProdCloudStorage{
				CredentialsFile: "/secrets/sa.json",
				BucketName:      "snapshots",
			}))
		})

		It("uses an emulator when an endpoint is set", func() {
			v.Set(application.ArchiveEndpointKey, "http://localhost:4443/storage/v1/")

			config, err := application.LoadConfig(v)
			Expect(err).NotTo(HaveOccurred())

			storage := config.ArchiveStorage()
			Expect(storage).To(BeAssignableToTypeOf(sharedconfig.LocalCloudStorage{}))
			Expect(storage.GetBucket()).To(Equal("snapshots"))
			Expect(storage.ClientOptions()).To(HaveLen(2))
		})
	})
})
