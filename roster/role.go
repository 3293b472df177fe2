// Package roster builds groups and roles from marker spans and classifies
// group labels into factions.
package roster

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lobziq/pdmafiadatabase/layout"
	"github.com/lobziq/pdmafiadatabase/markup"
)

const (
	// CivilianRole is the display name of the plain townsperson role.
	CivilianRole = "Мирный житель"

	noRoleLabel = "norole"
	activeLabel = "active"
)

// Group pairs a site-side group label with its faction. Faction is nil when
// the label is unclassified.
type Group struct {
	Name    string   `json:"name"`
	Faction *Faction `json:"faction"`
}

// Role is a named character capability. Every role owns its own Group copy.
type Role struct {
	Name  string `json:"name"`
	Group Group  `json:"group"`
}

// NewGroup builds a group and classifies its label.
func NewGroup(name string) Group {
	g := Group{Name: name}
	if f, ok := Classify(name); ok {
		g.Faction = &f
	}
	return g
}

// NewGroupWithFaction builds a group with an explicitly supplied faction,
// skipping classification.
func NewGroupWithFaction(name string, faction Faction) Group {
	return Group{Name: name, Faction: &faction}
}

// Classified reports whether the group has a faction.
func (g Group) Classified() bool {
	return g.Faction != nil
}

// NewRole attaches a copy of group to a role named name and then corrects
// the group's display label. The faction is not recomputed.
func NewRole(name string, group Group) Role {
	if group.Faction != nil {
		f := *group.Faction
		group.Faction = &f
	}
	return Role{
		Name:  name,
		Group: correctLabel(name, group),
	}
}

// correctLabel renames "norole" to "active" for every role other than the
// plain civilian.
func correctLabel(roleName string, group Group) Group {
	if roleName != CivilianRole && group.Name == noRoleLabel {
		group.Name = activeLabel
	}
	return group
}

// FromMarker assembles a role from one marker span.
func FromMarker(marker *goquery.Selection) Role {
	name := strings.ReplaceAll(markup.StrippedText(marker), ",", "")
	return NewRole(name, NewGroup(markup.MarkerLabel(marker)))
}

// Assemble builds one role per marker span under sel, in document order.
// Unclassified roles are kept; see FilterClassified.
func Assemble(sel *goquery.Selection, locator string) []Role {
	roles := []Role{}
	markup.Markers(sel, locator, layout.MarkerPrefix).Each(func(_ int, s *goquery.Selection) {
		roles = append(roles, FromMarker(s))
	})
	return roles
}

// FilterClassified returns the roles whose group has a faction.
func FilterClassified(roles []Role) []Role {
	kept := make([]Role, 0, len(roles))
	for _, r := range roles {
		if r.Group.Classified() {
			kept = append(kept, r)
		}
	}
	return kept
}
