package envvar

import (
	"fmt"
	"os"
)

const (
	ENVIRONMENT           = "ENVIRONMENT"
	PORT                  = "PORT"
	SONGS_API_KEY         = "SONGS_API_KEY"
	ALLOWED_ORIGINS       = "ALLOWED_ORIGINS"
	AWS_ACCESS_KEY_ID     = "AWS_ACCESS_KEY_ID"
	AWS_SECRET_ACCESS_KEY = "AWS_SECRET_ACCESS_KEY"
	AWS_REGION            = "AWS_REGION"
	RABBITMQ_URL          = "RABBITMQ_URL"
	RABBITMQ_QUEUE_NAME   = "RABBITMQ_QUEUE_NAME"
)

func MustGet(key string) string {
	val, isSet := os.LookupEnv(key)
	if !isSet {
		panic(fmt.Sprintf("No env variable found for key %s", key))
	}

	if val == "" {
		panic(fmt.Sprintf("Env variable is empty for key %s", key))
	}

	return val
}

func GetOr(key string, fallback string) string {
	val, isSet := os.LookupEnv(key)
	if !isSet || val == "" {
		return fallback
	}

	return val
}
