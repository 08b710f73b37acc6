package testing

import (
	. "github.com/onsi/gomega"
	server_app "github.com/veedubyou/song-catalog/src/server/application"
	"github.com/veedubyou/song-catalog/src/shared/config"
	"github.com/veedubyou/song-catalog/src/shared/config/dev"
	"github.com/veedubyou/song-catalog/src/shared/config/envvar"
	"os"
)

const APIKey = "test-api-key"

func SetTestEnv() {
	err := os.Setenv(envvar.ENVIRONMENT, "test")
	Expect(err).NotTo(HaveOccurred())
}

// ServerConfig keeps songs in memory and publishes no events
func ServerConfig() server_app.Config {
	return server_app.Config{
		APIKey:             APIKey,
		CORSAllowedOrigins: []string{"*"},
		Log:                false,
	}
}

// DynamoDB
const (
	DynamoAccessKeyID     = dev.DynamoAccessKeyID
	DynamoSecretAccessKey = dev.DynamoSecretAccessKey
	DynamoDBHost          = dev.DynamoDBHost
)

func DynamoConfig(region string) config.LocalDynamo {
	return config.LocalDynamo{
		AccessKeyID:     DynamoAccessKeyID,
		SecretAccessKey: DynamoSecretAccessKey,
		Region:          region,
		Host:            DynamoDBHost,
	}
}

// RabbitMQ
const (
	RabbitMQHost      = dev.RabbitMQHost
	RabbitMQQueueName = "song-catalog-events-test"
)
