package roster

import "strings"

// Faction is one of the opposing allegiances a group belongs to.
type Faction string

const (
	City    Faction = "city"
	Mafia   Faction = "mafia"
	Neutral Faction = "neutral"
)

// Rule maps labels satisfying Match to Faction.
type Rule struct {
	Match   func(label string) bool
	Faction Faction
}

// Classifier evaluates every rule in order. The last matching rule decides
// the faction, so later rules override earlier ones.
type Classifier struct {
	Rules []Rule
}

// DefaultRules is the pdmafia label taxonomy. A label holding both "mafia"
// and "neutral" is neutral.
var DefaultRules = []Rule{
	{Match: equalsAny("norole", "active"), Faction: City},
	{Match: contains("mafia"), Faction: Mafia},
	{Match: contains("neutral"), Faction: Neutral},
}

var defaultClassifier = Classifier{Rules: DefaultRules}

// Classify reports the faction of label. ok is false when no rule matches,
// which is a valid outcome rather than an error.
func (c Classifier) Classify(label string) (faction Faction, ok bool) {
	for _, rule := range c.Rules {
		if rule.Match(label) {
			faction, ok = rule.Faction, true
		}
	}
	return faction, ok
}

// Classify runs the default rules against label.
func Classify(label string) (Faction, bool) {
	return defaultClassifier.Classify(label)
}

func equalsAny(values ...string) func(string) bool {
	return func(label string) bool {
		for _, v := range values {
			if label == v {
				return true
			}
		}
		return false
	}
}

func contains(substr string) func(string) bool {
	return func(label string) bool {
		return strings.Contains(label, substr)
	}
}
