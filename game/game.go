// Package game extracts played games, their winners and player outcomes
// from game detail pages.
package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lobziq/pdmafiadatabase/layout"
	"github.com/lobziq/pdmafiadatabase/markup"
)

// Player is one participant and how they left the game.
type Player struct {
	Name     string       `json:"name"`
	RoleName string       `json:"role_name"`
	Status   PlayerStatus `json:"status"`
}

// Game is one played instance of a setting.
type Game struct {
	// ExternalID is the forum thread id shown in the metadata table.
	ExternalID int `json:"external_id"`
	// LocalID is the site id the detail page was fetched with.
	LocalID     int      `json:"local_id"`
	Name        string   `json:"name"`
	SettingName string   `json:"setting_name"`
	Host        string   `json:"host"`
	Time        string   `json:"time"`
	DayCount    string   `json:"day_count"`
	Tags        []string `json:"tags"`
	// FactionWinners holds raw group labels, not classified factions.
	FactionWinners Set      `json:"faction_winners"`
	Players        []Player `json:"players"`
}

// Extract reads the game with site id id from its detail page. Every
// metadata field is required. Player rows that cannot be parsed are dropped.
func Extract(doc *goquery.Document, id int, tags []string) (*Game, error) {
	page := layout.Game

	var externalID string
	g := &Game{
		LocalID:        id,
		Tags:           append([]string{}, tags...),
		FactionWinners: Set{},
		Players:        []Player{},
	}

	fields := []struct {
		label   string
		locator string
		dst     *string
	}{
		{"external id", page.ExternalIDSelector, &externalID},
		{"name", page.NameSelector, &g.Name},
		{"setting name", page.SettingNameSelector, &g.SettingName},
		{"host", page.HostSelector, &g.Host},
		{"time", page.TimeSelector, &g.Time},
		{"day count", page.DayCountSelector, &g.DayCount},
	}
	for _, f := range fields {
		v, err := markup.FindText(doc.Selection, f.locator)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s of game %d: %w", f.label, id, err)
		}
		*f.dst = v
	}

	ext, err := strconv.Atoi(externalID)
	if err != nil {
		return nil, fmt.Errorf("invalid external id of game %d: %w", id, err)
	}
	g.ExternalID = ext

	markup.Markers(doc.Selection, page.MarkerSelector, layout.MarkerPrefix).Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(s.Parent().Parent().Text(), page.WinnerLabel) {
			g.FactionWinners.Add(markup.MarkerLabel(s))
		}
	})

	tables := doc.Find("tbody")
	if tables.Length() <= page.PlayerTableIndex {
		locator := fmt.Sprintf("tbody[%d]", page.PlayerTableIndex)
		return nil, fmt.Errorf("failed to read players of game %d: %w", id, &markup.NotFoundError{Locator: locator})
	}
	tables.Eq(page.PlayerTableIndex).Children().Each(func(_ int, row *goquery.Selection) {
		if p, ok := parsePlayerRow(row, page); ok {
			g.Players = append(g.Players, p)
		}
	})

	return g, nil
}

// parsePlayerRow reads one row of the player table. ok is false when the
// row has too few cells or an unparsable status.
func parsePlayerRow(row *goquery.Selection, page layout.GamePage) (p Player, ok bool) {
	cells := row.Children()
	if cells.Length() <= max(page.PlayerNameColumn, page.RoleNameColumn, page.StatusColumn) {
		return Player{}, false
	}

	status, err := ParseStatus(cells.Eq(page.StatusColumn).Text())
	if err != nil {
		return Player{}, false
	}

	return Player{
		Name:     markup.StrippedText(cells.Eq(page.PlayerNameColumn)),
		RoleName: markup.StrippedText(cells.Eq(page.RoleNameColumn)),
		Status:   status,
	}, true
}
