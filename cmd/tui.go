package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hackstories/hackstories/internal/config"
	"github.com/hackstories/hackstories/internal/session"
	"github.com/hackstories/hackstories/internal/source"
	"github.com/hackstories/hackstories/internal/store"
	"github.com/hackstories/hackstories/internal/story"
	"github.com/hackstories/hackstories/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagSource != "" {
		cfg.Source = flagSource
	}
	if flagFail {
		cfg.Fail = true
	}

	db, err := store.Open(config.StorePath())
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	src, err := buildSource(cfg)
	if err != nil {
		return err
	}

	term := store.NewCell(db, cfg.GetSearchKey(), "")
	sess := session.New(term, source.Seed())

	// Show the last known-good collection while the fresh load runs; a
	// failed first load then degrades to it instead of an empty list.
	if cached, err := db.LoadStories(); err == nil && len(cached) > 0 {
		sess.Dispatch(story.SetStories{Stories: cached})
	}

	return tui.Run(tui.RunOpts{Session: sess, Source: src, DB: db})
}

func buildSource(cfg *config.Config) (source.Source, error) {
	switch cfg.Source {
	case config.SourceSimulated:
		return &source.Simulated{
			Stories: source.Seed(),
			Latency: cfg.LatencyDuration(),
			Fail:    cfg.Fail,
		}, nil
	case config.SourceFeed:
		return source.NewFeed(cfg.FeedURL), nil
	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}
