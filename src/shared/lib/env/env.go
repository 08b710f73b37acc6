package env

import "github.com/veedubyou/song-catalog/src/shared/config/envvar"

type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
	// Local runs the server without any backing services
	Local Environment = "local"
	Test  Environment = "test"
)

func Get() Environment {
	environment := envvar.MustGet(envvar.ENVIRONMENT)

	switch environment {
	case "production":
		return Production
	case "development":
		return Development
	case "local":
		return Local
	case "test":
		return Test
	default:
		panic("Invalid environment is set")
	}
}
