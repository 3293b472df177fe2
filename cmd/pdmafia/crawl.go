package main

import (
	"fmt"

	"github.com/lobziq/pdmafiadatabase/crawl"
	"github.com/spf13/cobra"
)

func settingsCmd(flags *globalFlags) *cobra.Command {
	var id int
	var name string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Crawl settings (all, or one with --id)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, cleanup, err := setup(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			c := crawl.New(e.fetcher, e.store, e.logger)

			if cmd.Flags().Changed("id") {
				s, err := c.Setting(cmd.Context(), id, name)
				if err != nil {
					return err
				}
				printSaved("setting", s.ID, s.Name)
				return nil
			}

			fmt.Printf("Crawling settings from %s...\n", e.cfg.BaseURL)
			result, err := c.Settings(cmd.Context())
			if result != nil {
				printCrawlSummary("settings", result.Saved, e)
			}
			return err
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Crawl only the setting with this id")
	cmd.Flags().StringVar(&name, "name", "", "Name to record for --id (default: placeholder)")
	return cmd
}

func gamesCmd(flags *globalFlags) *cobra.Command {
	var id int
	var tags []string

	cmd := &cobra.Command{
		Use:   "games",
		Short: "Crawl games (all, or one with --id)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, cleanup, err := setup(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			c := crawl.New(e.fetcher, e.store, e.logger)

			if cmd.Flags().Changed("id") {
				g, err := c.Game(cmd.Context(), id, tags)
				if err != nil {
					return err
				}
				printSaved("game", g.ExternalID, g.Name)
				return nil
			}

			fmt.Printf("Crawling games from %s...\n", e.cfg.BaseURL)
			result, err := c.Games(cmd.Context())
			if result != nil {
				printCrawlSummary("games", result.Saved, e)
			}
			return err
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Crawl only the game with this site id")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag to record for --id (repeatable)")
	return cmd
}
