package generate

import (
	"erdb/internal/gamedata"
)

// Spirit ashes share EquipParamGoods with several other categories and
// are carved out by this id range.
const (
	spiritAshIDMin = 200000
	spiritAshIDMax = 300000
)

var spiritAshFields = []string{
	"iconId", "sellValue", "rarity", "sortId", "maxNum", "consumeMP",
}

type spiritAshGenerator struct {
	base
	table *gamedata.Table
}

func newSpiritAshes(src *gamedata.Source) (Generator, error) {
	table, err := src.Table(SpiritAshes.Stem())
	if err != nil {
		return nil, err
	}
	if err := table.LookupFields(spiritAshFields...); err != nil {
		return nil, err
	}
	return &spiritAshGenerator{base: base{category: SpiritAshes}, table: table}, nil
}

func inSpiritAshRange(id int) bool {
	return id >= spiritAshIDMin && id < spiritAshIDMax
}

func (g *spiritAshGenerator) Rows() []gamedata.Row {
	var rows []gamedata.Row
	for _, row := range g.table.Rows() {
		if inSpiritAshRange(row.ID) && namedReleased(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

func (g *spiritAshGenerator) Construct(row gamedata.Row) map[string]any {
	return map[string]any{
		"id":         row.ID,
		"name":       row.Name,
		"icon":       row.Int("iconId"),
		"price_sold": row.Int("sellValue"),
		"rarity":     row.Int("rarity"),
		"max_held":   row.Int("maxNum"),
		"fp_cost":    row.Int("consumeMP"),
	}
}
