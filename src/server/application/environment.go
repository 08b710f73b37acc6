package application

import (
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/song-catalog/src/shared/config"
	"github.com/veedubyou/song-catalog/src/shared/config/dev"
	"github.com/veedubyou/song-catalog/src/shared/config/envvar"
	"github.com/veedubyou/song-catalog/src/shared/lib/env"
	"strings"
)

// ConfigFor reads the settings of one environment from the env vars.
// Production panics on a missing required variable
func ConfigFor(environment env.Environment) (Config, error) {
	switch environment {
	case env.Production:
		commaSeparatedOrigins := envvar.MustGet(envvar.ALLOWED_ORIGINS)
		allowedOrigins := strings.Split(commaSeparatedOrigins, ",")

		return Config{
			DynamoConfig: config.ProdDynamo{
				AccessKeyID:     envvar.MustGet(envvar.AWS_ACCESS_KEY_ID),
				SecretAccessKey: envvar.MustGet(envvar.AWS_SECRET_ACCESS_KEY),
				Region:          envvar.MustGet(envvar.AWS_REGION),
			},
			RabbitMQURL:        envvar.GetOr(envvar.RABBITMQ_URL, ""),
			RabbitMQQueueName:  envvar.GetOr(envvar.RABBITMQ_QUEUE_NAME, ""),
			APIKey:             envvar.MustGet(envvar.SONGS_API_KEY),
			CORSAllowedOrigins: allowedOrigins,
			Port:               ":" + envvar.GetOr(envvar.PORT, "5000"),
			Log:                true,
		}, nil

	case env.Development:
		return Config{
			DynamoConfig:       dev.DynamoConfig,
			RabbitMQURL:        dev.RabbitMQHost,
			RabbitMQQueueName:  dev.RabbitMQQueueName,
			APIKey:             envvar.GetOr(envvar.SONGS_API_KEY, dev.APIKey),
			CORSAllowedOrigins: []string{"*"},
			Port:               dev.Port,
			Log:                true,
		}, nil

	case env.Local:
		return Config{
			APIKey:             envvar.GetOr(envvar.SONGS_API_KEY, dev.APIKey),
			CORSAllowedOrigins: []string{"*"},
			Port:               dev.Port,
			Log:                true,
		}, nil

	// songs in memory and no events, like local, but quiet
	case env.Test:
		return Config{
			APIKey:             envvar.GetOr(envvar.SONGS_API_KEY, dev.APIKey),
			CORSAllowedOrigins: []string{"*"},
			Port:               ":" + envvar.GetOr(envvar.PORT, "5000"),
			Log:                false,
		}, nil

	default:
		return Config{}, errors.Newf("Unexpected environment %q", environment)
	}
}
