package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/lobziq/pdmafiadatabase/game"
	"github.com/lobziq/pdmafiadatabase/roster"
	"github.com/lobziq/pdmafiadatabase/setting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintSettingsTable(t *testing.T) {
	var buf bytes.Buffer
	printSettingsTable(&buf, []setting.Setting{{
		ID:     4,
		Name:   "Классика",
		Author: "lobziq",
		Roles: []roster.Role{
			roster.NewRole("Дон", roster.NewGroup("mafia")),
			roster.NewRole("Ведьма", roster.NewGroup("ghost")),
		},
	}})

	out := buf.String()
	assert.Contains(t, out, "4 Классика")
	assert.Contains(t, out, "Author: lobziq | Roles: 2")
	assert.Contains(t, out, "Дон [mafia]")
	assert.Contains(t, out, "Ведьма [?]")
	assert.Contains(t, out, "1 settings")
}

func TestPrintGamesTable(t *testing.T) {
	winners := game.NewSet("neutral", "mafia")
	var buf bytes.Buffer
	printGamesTable(&buf, []game.Game{{
		ExternalID:     511,
		LocalID:        11,
		Name:           "Игра",
		SettingName:    "Классика",
		Host:           "lobziq",
		DayCount:       "4",
		Tags:           []string{"Турнир"},
		FactionWinners: winners,
	}})

	out := buf.String()
	assert.Contains(t, out, "511 Игра")
	assert.Contains(t, out, "Setting: Классика | Host: lobziq | Days: 4")
	assert.Contains(t, out, "Tags: Турнир")
	assert.Contains(t, out, "Winners: mafia, neutral | Players: 0")
	assert.Contains(t, out, "Site ID: 11")
}

func TestPrintTables_Empty(t *testing.T) {
	var buf bytes.Buffer
	printSettingsTable(&buf, nil)
	printGamesTable(&buf, nil)

	assert.Equal(t, "No settings to display.\nNo games to display.\n", buf.String())
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON[game.Game](&buf, "games", nil))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, []any{}, out["games"])
	assert.Equal(t, float64(0), out["total"])
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "aa bb\ncc", wrapText("aa bb cc", 5))
	assert.Equal(t, "", wrapText("", 5))
}
