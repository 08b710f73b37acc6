package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/veedubyou/song-catalog/src/client/application"
)

type runner struct {
	v    *viper.Viper
	deps application.Deps
}

func NewRootCmd(v *viper.Viper, deps application.Deps) *cobra.Command {
	r := runner{
		v:    v,
		deps: deps,
	}

	rootCmd := &cobra.Command{
		Use:           "songs",
		Short:         "Browse and edit your song catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("api-url", "", "base URL of the song service (env SONGS_API_URL)")
	flags.String("api-key", "", "API key of the song service (env SONGS_API_KEY)")
	flags.Duration("timeout", 0, "HTTP timeout per request (env SONGS_HTTP_TIMEOUT)")
	flags.String("archive-bucket", "", "cloud storage bucket to archive snapshots to (env SONGS_ARCHIVE_BUCKET)")

	_ = v.BindPFlag(application.APIURLKey, flags.Lookup("api-url"))
	_ = v.BindPFlag(application.APIKeyKey, flags.Lookup("api-key"))
	_ = v.BindPFlag(application.HTTPTimeoutKey, flags.Lookup("timeout"))
	_ = v.BindPFlag(application.ArchiveBucketKey, flags.Lookup("archive-bucket"))

	rootCmd.AddCommand(r.newListCmd())
	rootCmd.AddCommand(r.newShowCmd())
	rootCmd.AddCommand(r.newAddCmd())
	rootCmd.AddCommand(r.newDeleteCmd())
	rootCmd.AddCommand(r.newWatchCmd())

	return rootCmd
}

func (r runner) withApp(fn func(app *application.App) error) error {
	config, err := application.LoadConfig(r.v)
	if err != nil {
		return err
	}

	app, err := application.NewAppWithDeps(config, r.deps)
	if err != nil {
		return err
	}

	runErr := fn(app)
	closeErr := app.Close()
	if runErr != nil {
		return runErr
	}

	return closeErr
}
