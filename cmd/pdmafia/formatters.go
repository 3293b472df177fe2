package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/lobziq/pdmafiadatabase/game"
	"github.com/lobziq/pdmafiadatabase/roster"
	"github.com/lobziq/pdmafiadatabase/setting"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
)

func printSaved(kind string, id int, name string) {
	fmt.Printf("%s Saved %s %d: %s\n", green("✓"), kind, id, name)
}

func printCrawlSummary(kind string, saved int, e *env) {
	fmt.Printf("%s Saved %d %s to %s (%s)\n", green("✓"), saved, kind, e.cfg.Storage.DSN, e.cfg.Storage.Type)
	fmt.Printf("   Run: %s\n", faint(e.runID.String()))
}

// printSettingsTable prints settings in human-readable format
func printSettingsTable(w io.Writer, settings []setting.Setting) {
	if len(settings) == 0 {
		fmt.Fprintln(w, "No settings to display.")
		return
	}

	for _, s := range settings {
		fmt.Fprintf(w, "%d %s\n", s.ID, s.Name)
		fmt.Fprintf(w, "   Author: %s | Roles: %d\n", s.Author, len(s.Roles))
		for _, line := range strings.Split(wrapText(roleSummary(s.Roles), 76), "\n") {
			if line != "" {
				fmt.Fprintf(w, "   %s\n", line)
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d settings\n", len(settings))
}

// roleSummary renders roles grouped by faction, in roster order.
func roleSummary(roles []roster.Role) string {
	var parts []string
	for _, r := range roles {
		faction := "?"
		if r.Group.Faction != nil {
			faction = string(*r.Group.Faction)
		}
		parts = append(parts, fmt.Sprintf("%s [%s]", r.Name, faction))
	}
	return strings.Join(parts, ", ")
}

// printGamesTable prints games in human-readable format
func printGamesTable(w io.Writer, games []game.Game) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games to display.")
		return
	}

	for _, g := range games {
		// Truncate name for display
		name := g.Name
		if r := []rune(name); len(r) > 70 {
			name = string(r[:67]) + "..."
		}

		fmt.Fprintf(w, "%d %s\n", g.ExternalID, name)
		fmt.Fprintf(w, "   Setting: %s | Host: %s | Days: %s\n", g.SettingName, g.Host, g.DayCount)
		if len(g.Tags) > 0 {
			fmt.Fprintf(w, "   Tags: %s\n", strings.Join(g.Tags, ", "))
		}

		winners := "none"
		if labels := g.FactionWinners.Sorted(); len(labels) > 0 {
			winners = strings.Join(labels, ", ")
		}
		fmt.Fprintf(w, "   Winners: %s | Players: %d\n", yellow(winners), len(g.Players))
		fmt.Fprintf(w, "   Site ID: %d\n", g.LocalID)
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d games\n", len(games))
}

// printJSON prints records in JSON format
func printJSON[T any](w io.Writer, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	output := map[string]any{
		key:     items,
		"total": len(items),
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(w, string(data))
	return nil
}

// wrapText wraps text to a maximum line width
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	var currentLine strings.Builder

	for _, word := range words {
		if currentLine.Len() == 0 {
			currentLine.WriteString(word)
		} else if currentLine.Len()+1+len(word) <= width {
			currentLine.WriteString(" ")
			currentLine.WriteString(word)
		} else {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentLine.WriteString(word)
		}
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, "\n")
}
