package markup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ErrNotFound is returned when a fixed document position holds no element.
var ErrNotFound = errors.New("element not found")

// NotFoundError names the locator that failed to match.
type NotFoundError struct {
	Locator string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNotFound, e.Locator)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Find returns the first element matching locator under sel. A missing
// element is a *NotFoundError.
func Find(sel *goquery.Selection, locator string) (*goquery.Selection, error) {
	found := sel.Find(locator).First()
	if found.Length() == 0 {
		return nil, &NotFoundError{Locator: locator}
	}
	return found, nil
}

// FindText is Find followed by the matched element's trimmed text.
func FindText(sel *goquery.Selection, locator string) (string, error) {
	found, err := Find(sel, locator)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(found.Text()), nil
}

// StrippedText joins every text node under sel, each trimmed of surrounding
// whitespace, with no separator. Whitespace-only nodes contribute nothing.
func StrippedText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeStripped(n, &b)
	}
	return b.String()
}

func writeStripped(node *html.Node, b *strings.Builder) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		b.WriteString(strings.TrimSpace(node.Data))
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		writeStripped(child, b)
	}
}

// Markers returns the elements matching locator that carry at least one
// class token starting with prefix, in document order.
func Markers(sel *goquery.Selection, locator, prefix string) *goquery.Selection {
	return sel.Find(locator).FilterFunction(func(_ int, s *goquery.Selection) bool {
		for _, token := range strings.Fields(s.AttrOr("class", "")) {
			if strings.HasPrefix(token, prefix) {
				return true
			}
		}
		return false
	})
}

// MarkerLabel reads the group label out of a marker's first class token:
// the leading segment is dropped and the remaining "-" separated segments
// are concatenated, so "faction-mafia-boss" yields "mafiaboss".
func MarkerLabel(sel *goquery.Selection) string {
	tokens := strings.Fields(sel.AttrOr("class", ""))
	if len(tokens) == 0 {
		return ""
	}
	segments := strings.Split(tokens[0], "-")
	return strings.Join(segments[1:], "")
}
