package roster

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRole_CivilianKeepsNorole verifies the civilian keeps its label
func TestNewRole_CivilianKeepsNorole(t *testing.T) {
	role := NewRole("Мирный житель", NewGroup("norole"))

	assert.Equal(t, "norole", role.Group.Name)
	require.NotNil(t, role.Group.Faction)
	assert.Equal(t, City, *role.Group.Faction)
}

// TestNewRole_ActiveRename verifies non-civilian norole roles become active
func TestNewRole_ActiveRename(t *testing.T) {
	role := NewRole("Доктор", NewGroup("norole"))

	assert.Equal(t, "Доктор", role.Name)
	assert.Equal(t, "active", role.Group.Name)
	require.NotNil(t, role.Group.Faction)
	assert.Equal(t, City, *role.Group.Faction, "faction is not recomputed")
}

// TestNewRole_OtherLabelsUntouched verifies only norole is corrected
func TestNewRole_OtherLabelsUntouched(t *testing.T) {
	role := NewRole("Дон", NewGroup("mafia"))

	assert.Equal(t, "mafia", role.Group.Name)
	require.NotNil(t, role.Group.Faction)
	assert.Equal(t, Mafia, *role.Group.Faction)
}

// TestNewRole_DoesNotShareGroup verifies roles hold independent group copies
func TestNewRole_DoesNotShareGroup(t *testing.T) {
	group := NewGroup("norole")

	civilian := NewRole("Мирный житель", group)
	doctor := NewRole("Доктор", group)

	assert.Equal(t, "norole", group.Name, "source group is not modified")
	assert.Equal(t, "norole", civilian.Group.Name)
	assert.Equal(t, "active", doctor.Group.Name)

	*doctor.Group.Faction = Mafia
	assert.Equal(t, City, *civilian.Group.Faction)
	assert.Equal(t, City, *group.Faction)
}

// TestNewGroupWithFaction verifies a supplied faction skips classification
func TestNewGroupWithFaction(t *testing.T) {
	g := NewGroupWithFaction("random", Neutral)

	require.True(t, g.Classified())
	assert.Equal(t, Neutral, *g.Faction)
}

// TestNewGroup_Unclassified verifies unknown labels have no faction
func TestNewGroup_Unclassified(t *testing.T) {
	g := NewGroup("random")

	assert.False(t, g.Classified())
	assert.Nil(t, g.Faction)
}

// TestAssemble verifies roles are built from marker spans in document order
func TestAssemble(t *testing.T) {
	html := `
	<html>
		<body>
			<div>
				<span class="faction-norole"> Мирный житель, </span>
				<span class="faction-norole"><b>Доктор</b>,</span>
				<span class="faction-mafia-boss">Дон</span>
				<span class="faction-neutral">Маньяк</span>
				<span class="faction-unknown">Призрак</span>
				<span class="label">not a marker</span>
			</div>
		</body>
	</html>
	`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	roles := Assemble(doc.Selection, "span")

	require.Len(t, roles, 5)
	assert.Equal(t, "Мирный житель", roles[0].Name)
	assert.Equal(t, "norole", roles[0].Group.Name)
	assert.Equal(t, "Доктор", roles[1].Name)
	assert.Equal(t, "active", roles[1].Group.Name)
	assert.Equal(t, "Дон", roles[2].Name)
	assert.Equal(t, "mafiaboss", roles[2].Group.Name)
	assert.Equal(t, Mafia, *roles[2].Group.Faction)
	assert.Equal(t, Neutral, *roles[3].Group.Faction)
	assert.Nil(t, roles[4].Group.Faction)
}

// TestFilterClassified verifies unclassified roles are dropped
func TestFilterClassified(t *testing.T) {
	roles := []Role{
		NewRole("Доктор", NewGroup("norole")),
		NewRole("Призрак", NewGroup("ghost")),
		NewRole("Дон", NewGroup("mafia")),
		NewRole("Шут", NewGroup("")),
	}

	kept := FilterClassified(roles)

	require.Len(t, kept, 2)
	assert.Equal(t, "Доктор", kept[0].Name)
	assert.Equal(t, "Дон", kept[1].Name)
	for _, r := range kept {
		assert.NotNil(t, r.Group.Faction)
	}
}

// TestFilterClassified_Empty verifies an empty input gives an empty slice
func TestFilterClassified_Empty(t *testing.T) {
	kept := FilterClassified(nil)

	assert.NotNil(t, kept)
	assert.Empty(t, kept)
}
