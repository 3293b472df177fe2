package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		label  string
		want   Faction
		wantOK bool
	}{
		{label: "norole", want: City, wantOK: true},
		{label: "active", want: City, wantOK: true},
		{label: "somemafia", want: Mafia, wantOK: true},
		{label: "mafiaboss", want: Mafia, wantOK: true},
		{label: "neutral", want: Neutral, wantOK: true},
		{label: "somemafianeutral", want: Neutral, wantOK: true},
		{label: "neutralmafia", want: Neutral, wantOK: true},
		{label: "random", wantOK: false},
		{label: "noroles", wantOK: false},
		{label: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := Classify(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestClassifier_LastMatchWins verifies later rules override earlier ones
func TestClassifier_LastMatchWins(t *testing.T) {
	always := func(string) bool { return true }
	never := func(string) bool { return false }

	c := Classifier{Rules: []Rule{
		{Match: always, Faction: Neutral},
		{Match: always, Faction: City},
		{Match: never, Faction: Mafia},
	}}

	got, ok := c.Classify("anything")
	assert.True(t, ok)
	assert.Equal(t, City, got)
}

// TestClassifier_NoRules verifies an empty rule list classifies nothing
func TestClassifier_NoRules(t *testing.T) {
	got, ok := Classifier{}.Classify("mafia")
	assert.False(t, ok)
	assert.Equal(t, Faction(""), got)
}
