package generate

import (
	"fmt"

	"erdb/internal/gamedata"
)

// Generator maps the rows of one param table onto item objects for one
// category. Construct output is merged over whatever the existing
// database already holds, so a generator only ever describes
// extractor-owned fields.
type Generator interface {
	Category() Category

	// Rows returns the main-table rows that belong to the category,
	// filtered and in table order.
	Rows() []gamedata.Row

	// KeyName derives the database key of a row, typically its name.
	KeyName(row gamedata.Row) string

	// Construct builds the extractor-owned item object of a row.
	Construct(row gamedata.Row) map[string]any

	// RequiresPatching reports whether merged items must be patched
	// against the schema's declared property set before validation.
	RequiresPatching() bool

	// Renames maps legacy keys of earlier extractor revisions onto
	// their current names, applied during patching.
	Renames() map[string]string
}

type base struct {
	category Category
}

func (b base) Category() Category { return b.category }

func (b base) KeyName(row gamedata.Row) string { return row.Name }

func (b base) RequiresPatching() bool { return false }

func (b base) Renames() map[string]string { return nil }

var constructors = map[Category]func(*gamedata.Source) (Generator, error){
	Armaments:        newArmaments,
	Armor:            newArmor,
	AshesOfWar:       newAshesOfWar,
	CorrectionAttack: newCorrectionAttack,
	CorrectionGraph:  newCorrectionGraph,
	Reinforcements:   newReinforcements,
	SpiritAshes:      newSpiritAshes,
	Spells:           newSpells,
	Talismans:        newTalismans,
	Tools:            newTools,
}

// New constructs the generator for a category, loading its param tables
// and confirming every required field exists in the export.
func New(category Category, src *gamedata.Source) (Generator, error) {
	construct, ok := constructors[category]
	if !ok {
		return nil, fmt.Errorf("no generator for category %q", category)
	}
	g, err := construct(src)
	if err != nil {
		return nil, fmt.Errorf("constructing %s generator: %w", category, err)
	}
	return g, nil
}

// cutContentSortID marks rows the game ships but never surfaces; the
// dumper keeps them, generators skip them.
const cutContentSortID = 9999999

func namedReleased(row gamedata.Row) bool {
	return row.Name != "" && row.Int("sortId") < cutContentSortID
}
