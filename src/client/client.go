package main

import (
	"fmt"
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/joho/godotenv"
	"github.com/veedubyou/song-catalog/src/client/application"
	"github.com/veedubyou/song-catalog/src/client/cmd"
	"os"
)

func main() {
	// .env is optional, real env vars win over it
	_ = godotenv.Load()

	log.SetHandler(cli.New(os.Stderr))
	if os.Getenv("SONGS_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	rootCmd := cmd.NewRootCmd(application.NewViper(), application.Deps{})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
