package cmd

import (
	"fmt"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/veedubyou/song-catalog/src/client/application"
	"github.com/veedubyou/song-catalog/src/shared/song/entity"
	"os/signal"
	"syscall"
	"time"
)

func (r runner) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Fetch and print every song",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(func(app *application.App) error {
				syncer := app.Syncer()
				if err := syncer.Refresh(cmd.Context()); err != nil {
					return err
				}

				return printSongs(cmd.OutOrStdout(), syncer.Songs().Songs)
			})
		},
	}
}

func (r runner) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one song with its lyrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(func(app *application.App) error {
				syncer := app.Syncer()
				if err := syncer.Refresh(cmd.Context()); err != nil {
					return err
				}

				song, ok := syncer.Find(args[0])
				if !ok {
					return errors.Newf("song %s not found", args[0])
				}

				printSong(cmd.OutOrStdout(), song)
				return nil
			})
		},
	}
}

func (r runner) newAddCmd() *cobra.Command {
	var draft songentity.Draft
	var lyrics string

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a song",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("lyrics") {
				draft.Lyrics = songentity.LyricsOf(lyrics)
			}

			return r.withApp(func(app *application.App) error {
				song, err := app.Syncer().Create(cmd.Context(), draft)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", song.ID)
				return nil
			})
		},
	}

	addCmd.Flags().StringVar(&draft.Title, "title", "", "song title")
	addCmd.Flags().StringVar(&draft.Singer, "singer", "", "singer")
	addCmd.Flags().IntVar(&draft.Rating, "rating", 0, fmt.Sprintf("rating from %d to %d", songentity.MinRating, songentity.MaxRating))
	addCmd.Flags().StringVar(&lyrics, "lyrics", "", "lyrics, optional")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("singer")
	_ = addCmd.MarkFlagRequired("rating")

	return addCmd
}

func (r runner) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a song",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(func(app *application.App) error {
				if err := app.Syncer().Delete(cmd.Context(), args[0]); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func (r runner) newWatchCmd() *cobra.Command {
	var interval time.Duration

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the catalog every time it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return r.withApp(func(app *application.App) error {
				session := app.NewSession(ctx)
				defer session.Close()

				sub := session.Subscribe()
				defer sub.Close()

				session.Start()

				var ticks <-chan time.Time
				if interval > 0 {
					ticker := time.NewTicker(interval)
					defer ticker.Stop()
					ticks = ticker.C
				}

				out := cmd.OutOrStdout()
				for {
					select {
					case <-ctx.Done():
						return nil
					case <-ticks:
						session.Refresh()
					case snapshot, ok := <-sub.C():
						if !ok {
							return nil
						}

						fmt.Fprintf(out, "-- version %d, %d songs\n", snapshot.Version, snapshot.Len())
						if err := printSongs(out, snapshot.Songs); err != nil {
							return err
						}
					}
				}
			})
		},
	}

	watchCmd.Flags().DurationVar(&interval, "interval", 0, "refresh periodically, 0 disables")
	return watchCmd
}
