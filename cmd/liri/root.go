package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mmcdole/liri/internal/app"
	"github.com/mmcdole/liri/internal/config"
	"github.com/mmcdole/liri/internal/domain"
	"github.com/mmcdole/liri/internal/journal"
	"github.com/mmcdole/liri/internal/log"
	"github.com/mmcdole/liri/internal/present"
	"github.com/mmcdole/liri/internal/source"
	"github.com/mmcdole/liri/internal/tui"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "liri",
		Short: "Look up tweets, songs and movies from an interactive menu",
		Long: `liri asks which lookup to run and prints the result:

  my-tweets          your 20 most recent favorited tweets
  spotify-this-song  the first Spotify match for a song
  movie-this         OMDb metadata for a movie title
  do-what-it-says    a song search using the query stored in random.txt

Every printed field is also appended to the journal (app.log by default).`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func run(ctx context.Context, in *os.File, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load config: %v\n", err)
		return fmt.Errorf("failed to load config: %w", err)
	}

	runID := uuid.NewString()

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	logger = logger.With("run_id", runID)
	slog.SetDefault(logger)

	logger.Info("starting liri", "version", Version)

	rec, err := journal.Open(cfg.Journal.File, runID)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}
	defer rec.Close()

	sources, err := source.NewSources(cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return fmt.Errorf("failed to create clients: %w", err)
	}

	presenter := present.New(stdout, rec)
	ctrl := app.NewController(app.Options{
		Prompter:     tui.NewPrompter(in, stdout),
		Favorites:    sources.Favorites,
		Songs:        sources.Songs,
		Movies:       sources.Movies,
		Presenter:    presenter,
		FallbackPath: cfg.Fallback.File,
		Preflight:    cfg.Validate,
		Logger:       logger,
	})

	if err := ctrl.Run(ctx); err != nil {
		code := domain.ExitCode(err)
		logger.Error("action failed", "error", err, "exit_code", code)
		if !errors.Is(err, domain.ErrAborted) {
			presenter.Failure(err)
		}
		return err
	}

	logger.Info("shutting down")
	return nil
}
