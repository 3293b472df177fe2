// Package listing walks the /settings and /games index pages and yields one
// entry per detail page to visit.
package listing

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lobziq/pdmafiadatabase/layout"
	"github.com/lobziq/pdmafiadatabase/markup"
)

// Entry identifies a detail page found on a listing.
type Entry struct {
	ID int
	// Name is the anchor text of a settings link. Empty for games.
	Name string
	// Tags holds the tag column of a games row. Empty for settings.
	Tags []string
}

// Settings yields one entry per distinct settings link, in document order.
// The sequence stops at the first link whose trailing path segment is not
// an integer, yielding that error.
func Settings(doc *goquery.Document) iter.Seq2[Entry, error] {
	page := layout.Settings

	return func(yield func(Entry, error) bool) {
		seen := map[string]bool{}
		doc.Find(page.LinkSelector).EachWithBreak(func(_ int, a *goquery.Selection) bool {
			href := a.AttrOr("href", "")
			if !strings.Contains(href, page.LinkPattern) || seen[href] {
				return true
			}
			seen[href] = true

			id, err := trailingID(href)
			if err != nil {
				yield(Entry{}, fmt.Errorf("invalid settings link: %w", err))
				return false
			}
			return yield(Entry{ID: id, Name: strings.TrimSpace(a.Text())}, nil)
		})
	}
}

// Games yields one entry per table row. Each row must carry a detail link
// and a tag at their fixed columns; the sequence stops at the first row
// that does not, yielding the error.
func Games(doc *goquery.Document) iter.Seq2[Entry, error] {
	page := layout.Games

	return func(yield func(Entry, error) bool) {
		doc.Find(page.RowSelector).EachWithBreak(func(i int, row *goquery.Selection) bool {
			entry, err := gameRow(row, page)
			if err != nil {
				yield(Entry{}, fmt.Errorf("games row %d: %w", i, err))
				return false
			}
			return yield(entry, nil)
		})
	}
}

func gameRow(row *goquery.Selection, page layout.GamesListing) (Entry, error) {
	cells := row.Children()
	if cells.Length() <= max(page.LinkColumn, page.TagColumn) {
		return Entry{}, &markup.NotFoundError{Locator: fmt.Sprintf("td[%d]", max(page.LinkColumn, page.TagColumn))}
	}

	link := cells.Eq(page.LinkColumn).Children().First()
	href, ok := link.Attr("href")
	if !ok {
		return Entry{}, &markup.NotFoundError{Locator: fmt.Sprintf("td[%d] > [href]", page.LinkColumn)}
	}

	id, err := trailingID(href)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		ID:   id,
		Tags: []string{markup.StrippedText(cells.Eq(page.TagColumn))},
	}, nil
}

// trailingID parses the last "/" separated segment of a link path.
func trailingID(href string) (int, error) {
	segment := href[strings.LastIndex(href, "/")+1:]
	id, err := strconv.Atoi(segment)
	if err != nil {
		return 0, fmt.Errorf("link %q has no numeric id: %w", href, err)
	}
	return id, nil
}

// Collect drains seq into a slice, stopping at the first error.
func Collect(seq iter.Seq2[Entry, error]) ([]Entry, error) {
	entries := []Entry{}
	for entry, err := range seq {
		if err != nil {
			return entries, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
