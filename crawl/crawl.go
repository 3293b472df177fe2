// Package crawl drives a traversal of the site: walk a listing page, fetch
// and extract each detail page, and hand every record to a store.
package crawl

import (
	"context"
	"fmt"

	"github.com/lobziq/pdmafiadatabase/fetch"
	"github.com/lobziq/pdmafiadatabase/game"
	"github.com/lobziq/pdmafiadatabase/listing"
	"github.com/lobziq/pdmafiadatabase/setting"
	"go.uber.org/zap"
)

// Store receives completed records.
type Store interface {
	SaveSetting(s setting.Setting) error
	SaveGame(g game.Game) error
}

// Result summarizes a traversal.
type Result struct {
	// Saved counts records handed to the store before the traversal ended.
	Saved int
}

// Crawler visits pages one at a time. The first fetch, extraction or store
// failure aborts the traversal; records saved before it stay saved.
type Crawler struct {
	fetcher fetch.Fetcher
	store   Store
	logger  *zap.Logger
}

// New creates a crawler. A nil logger discards log output.
func New(fetcher fetch.Fetcher, store Store, logger *zap.Logger) *Crawler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Crawler{
		fetcher: fetcher,
		store:   store,
		logger:  logger,
	}
}

// Settings crawls every setting linked from the settings listing.
func (c *Crawler) Settings(ctx context.Context) (*Result, error) {
	doc, err := c.fetcher.Fetch(ctx, fetch.SettingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings listing: %w", err)
	}

	result := &Result{}
	for entry, err := range listing.Settings(doc) {
		if err != nil {
			return result, fmt.Errorf("failed to walk settings listing: %w", err)
		}
		if _, err := c.Setting(ctx, entry.ID, entry.Name); err != nil {
			return result, err
		}
		result.Saved++
	}

	c.logger.Info("settings crawl finished", zap.Int("saved", result.Saved))
	return result, nil
}

// Setting fetches, extracts and stores one setting. An empty name gets a
// placeholder.
func (c *Crawler) Setting(ctx context.Context, id int, name string) (*setting.Setting, error) {
	doc, err := c.fetcher.Fetch(ctx, fetch.SettingPath(id))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch setting %d: %w", id, err)
	}

	s, err := setting.Extract(doc, id, name)
	if err != nil {
		return nil, err
	}

	if err := c.store.SaveSetting(*s); err != nil {
		return nil, fmt.Errorf("failed to save setting %d: %w", id, err)
	}

	c.logger.Info("saved setting",
		zap.Int("id", s.ID),
		zap.String("name", s.Name),
		zap.Int("roles", len(s.Roles)),
	)
	return s, nil
}

// Games crawls every game listed on the games listing.
func (c *Crawler) Games(ctx context.Context) (*Result, error) {
	doc, err := c.fetcher.Fetch(ctx, fetch.GamesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch games listing: %w", err)
	}

	result := &Result{}
	for entry, err := range listing.Games(doc) {
		if err != nil {
			return result, fmt.Errorf("failed to walk games listing: %w", err)
		}
		if _, err := c.Game(ctx, entry.ID, entry.Tags); err != nil {
			return result, err
		}
		result.Saved++
	}

	c.logger.Info("games crawl finished", zap.Int("saved", result.Saved))
	return result, nil
}

// Game fetches, extracts and stores the game with site id id.
func (c *Crawler) Game(ctx context.Context, id int, tags []string) (*game.Game, error) {
	doc, err := c.fetcher.Fetch(ctx, fetch.GamePath(id))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch game %d: %w", id, err)
	}

	g, err := game.Extract(doc, id, tags)
	if err != nil {
		return nil, err
	}

	if err := c.store.SaveGame(*g); err != nil {
		return nil, fmt.Errorf("failed to save game %d: %w", id, err)
	}

	c.logger.Info("saved game",
		zap.Int("id", g.LocalID),
		zap.Int("external_id", g.ExternalID),
		zap.String("name", g.Name),
		zap.Int("players", len(g.Players)),
		zap.Strings("winners", g.FactionWinners.Sorted()),
	)
	return g, nil
}
