package generate

import (
	"erdb/internal/gamedata"
)

var talismanFields = []string{
	"weight", "refId", "accessoryGroup", "iconId", "sellValue", "rarity", "sortId",
}

type talismanGenerator struct {
	base
	table *gamedata.Table
}

func newTalismans(src *gamedata.Source) (Generator, error) {
	table, err := src.Table(Talismans.Stem())
	if err != nil {
		return nil, err
	}
	if err := table.LookupFields(talismanFields...); err != nil {
		return nil, err
	}
	return &talismanGenerator{base: base{category: Talismans}, table: table}, nil
}

func (g *talismanGenerator) Rows() []gamedata.Row {
	var rows []gamedata.Row
	for _, row := range g.table.Rows() {
		if namedReleased(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// Construct emits no "effects" field on purpose; effect descriptions
// are curated by hand in the databases and survive through merging.
func (g *talismanGenerator) Construct(row gamedata.Row) map[string]any {
	return map[string]any{
		"id":             row.ID,
		"name":           row.Name,
		"weight":         row.Float("weight"),
		"icon":           row.Int("iconId"),
		"price_sold":     row.Int("sellValue"),
		"rarity":         row.Int("rarity"),
		"effect_id":      row.Int("refId"),
		"conflict_group": row.Int("accessoryGroup"),
	}
}

func (g *talismanGenerator) RequiresPatching() bool { return true }

func (g *talismanGenerator) Renames() map[string]string {
	return map[string]string{
		"priceSold":     "price_sold",
		"effectId":      "effect_id",
		"conflictGroup": "conflict_group",
	}
}
