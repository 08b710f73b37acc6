package application

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"github.com/veedubyou/song-catalog/src/shared/config"
	"strings"
	"time"
)

const (
	EnvPrefix = "SONGS"

	APIURLKey          = "api_url"
	APIKeyKey          = "api_key"
	HTTPTimeoutKey     = "http_timeout"
	ArchiveBucketKey   = "archive_bucket"
	ArchivePrefixKey   = "archive_prefix"
	ArchiveEndpointKey = "archive_endpoint"
	ArchiveCredsKey    = "archive_credentials"
	ArchiveDrainKey    = "archive_drain_timeout"
)

type Config struct {
	APIBaseURL  string
	APIKey      string
	HTTPTimeout time.Duration

	// archiving is off when no bucket is set
	ArchiveBucket   string
	ArchivePrefix   string
	ArchiveEndpoint string

	// path to a service account JSON file
	ArchiveCredentials string

	// how long Close lets the archiver finish pending writes, defaults to
	// DefaultArchiveDrainTimeout
	ArchiveDrainTimeout time.Duration
}

const DefaultArchiveDrainTimeout = 30 * time.Second

func (c Config) archiveDrainTimeout() time.Duration {
	if c.ArchiveDrainTimeout <= 0 {
		return DefaultArchiveDrainTimeout
	}

	return c.ArchiveDrainTimeout
}

func (c Config) ArchiveEnabled() bool {
	return c.ArchiveBucket != ""
}

func (c Config) ArchiveStorage() config.CloudStorage {
	if c.ArchiveEndpoint != "" {
		return config.LocalCloudStorage{
			HostEndpoint: c.ArchiveEndpoint,
			BucketName:   c.ArchiveBucket,
		}
	}

	return config.ProdCloudStorage{
		CredentialsFile: c.ArchiveCredentials,
		BucketName:      c.ArchiveBucket,
	}
}

// NewViper reads SONGS_* env vars and an optional songs.toml in the
// working directory or ~/.config
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetConfigName("songs")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/")

	v.SetDefault(HTTPTimeoutKey, "30s")
	v.SetDefault(ArchivePrefixKey, "song-snapshots")
	v.SetDefault(ArchiveDrainKey, DefaultArchiveDrainTimeout.String())

	return v
}

func LoadConfig(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "Failed to read config file")
		}
	}

	config := Config{
		APIBaseURL:      v.GetString(APIURLKey),
		APIKey:          v.GetString(APIKeyKey),
		HTTPTimeout:     v.GetDuration(HTTPTimeoutKey),
		ArchiveBucket:   v.GetString(ArchiveBucketKey),
		ArchivePrefix:   v.GetString(ArchivePrefixKey),
		ArchiveEndpoint: v.GetString(ArchiveEndpointKey),

		ArchiveCredentials:  v.GetString(ArchiveCredsKey),
		ArchiveDrainTimeout: v.GetDuration(ArchiveDrainKey),
	}

	if config.APIBaseURL == "" {
		return Config{}, errors.Newf("%s_%s is required", EnvPrefix, strings.ToUpper(APIURLKey))
	}

	if config.APIKey == "" {
		return Config{}, errors.Newf("%s_%s is required", EnvPrefix, strings.ToUpper(APIKeyKey))
	}

	if config.HTTPTimeout <= 0 {
		return Config{}, errors.Newf("%s_%s must be a positive duration", EnvPrefix, strings.ToUpper(HTTPTimeoutKey))
	}

	return config, nil
}
