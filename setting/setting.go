package setting

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/lobziq/pdmafiadatabase/layout"
	"github.com/lobziq/pdmafiadatabase/markup"
	"github.com/lobziq/pdmafiadatabase/roster"
)

// Setting is a named ruleset: the roles available in a game plus the
// setting's author. Every role in Roles has a classified faction.
type Setting struct {
	ID     int           `json:"id"`
	Name   string        `json:"name"`
	Author string        `json:"author"`
	Roles  []roster.Role `json:"roles"`
}

// PlaceholderName is the name given to a setting whose listing entry did
// not supply one.
func PlaceholderName(id int) string {
	return fmt.Sprintf("Сеттинг %d", id)
}

// Extract reads a setting from its detail page. knownName, when non-empty,
// is used as the setting name. A missing author is fatal.
func Extract(doc *goquery.Document, id int, knownName string) (*Setting, error) {
	page := layout.Setting

	author, err := markup.FindText(doc.Selection, page.AuthorSelector)
	if err != nil {
		return nil, fmt.Errorf("failed to read author of setting %d: %w", id, err)
	}

	name := knownName
	if name == "" {
		name = PlaceholderName(id)
	}

	return &Setting{
		ID:     id,
		Name:   name,
		Author: author,
		Roles:  roster.FilterClassified(roster.Assemble(doc.Selection, page.MarkerSelector)),
	}, nil
}
