// Package layout records where each field lives on pdmafia.com pages. The
// locators are CSS selectors addressing fixed structural positions; they
// break when the site's markup changes.
package layout

import "fmt"

// MarkerPrefix is the class-token prefix of role/group marker spans.
const MarkerPrefix = "faction"

// SettingPage locates fields on a /settings/{id} page.
type SettingPage struct {
	AuthorSelector string
	MarkerSelector string
}

// GamePage locates fields on a /games/{id} page.
type GamePage struct {
	ExternalIDSelector  string
	NameSelector        string
	SettingNameSelector string
	HostSelector        string
	TimeSelector        string
	DayCountSelector    string

	MarkerSelector string
	// WinnerLabel marks the block that lists winning factions.
	WinnerLabel string

	// PlayerTableIndex is the position of the player table's tbody among
	// all tbody elements. The metadata table comes first.
	PlayerTableIndex int
	PlayerNameColumn int
	RoleNameColumn   int
	StatusColumn     int
}

// SettingsListing locates entries on the /settings page.
type SettingsListing struct {
	LinkSelector string
	LinkPattern  string
}

// GamesListing locates entries on the /games page. Columns are 0-based
// indexes into a row's element children.
type GamesListing struct {
	RowSelector string
	LinkColumn  int
	TagColumn   int
}

const settingInfo = "body > div > div > div > div > div > div:nth-of-type(2) > div > div > div > table > tbody"

const gameInfo = "body > div > div > div > section > div > div:nth-of-type(1) > div > div > table > tbody"

// infoCell addresses column 2 of the given 1-based row of an info table.
func infoCell(table string, row int) string {
	return fmt.Sprintf("%s > tr:nth-of-type(%d) > td:nth-of-type(2)", table, row)
}

var Setting = SettingPage{
	AuthorSelector: infoCell(settingInfo, 1) + " > a",
	MarkerSelector: "span",
}

var Game = GamePage{
	ExternalIDSelector:  infoCell(gameInfo, 1),
	NameSelector:        infoCell(gameInfo, 2),
	SettingNameSelector: infoCell(gameInfo, 3) + " > a",
	HostSelector:        infoCell(gameInfo, 4) + " > a",
	TimeSelector:        infoCell(gameInfo, 5),
	DayCountSelector:    infoCell(gameInfo, 6),

	MarkerSelector: "span",
	WinnerLabel:    "Фракция победитель",

	PlayerTableIndex: 1,
	PlayerNameColumn: 1,
	RoleNameColumn:   2,
	StatusColumn:     3,
}

var Settings = SettingsListing{
	LinkSelector: "a[href]",
	LinkPattern:  "/settings/",
}

var Games = GamesListing{
	RowSelector: "tr",
	LinkColumn:  1,
	TagColumn:   3,
}
