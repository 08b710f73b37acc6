package main

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
	"github.com/joho/godotenv"
	"github.com/veedubyou/song-catalog/src/server/application"
	"github.com/veedubyou/song-catalog/src/shared/lib/env"
	"os"
)

func main() {
	_ = godotenv.Load()
	log.SetHandler(json.New(os.Stderr))

	appConfig, err := application.ConfigFor(env.Get())
	if err != nil {
		panic(err)
	}

	app, err := application.NewApp(appConfig)
	if err != nil {
		panic(err)
	}

	log.WithField("port", appConfig.Port).Info("Serving songs")
	if err := app.Start(); err != nil {
		panic(err)
	}
}
