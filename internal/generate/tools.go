package generate

import (
	"erdb/internal/gamedata"
)

// goodsType code for ordinary usable items.
const goodsTypeNormal = 1

var toolFields = []string{
	"goodsType", "iconId", "sellValue", "rarity", "sortId", "maxNum",
}

type toolGenerator struct {
	base
	table *gamedata.Table
}

func newTools(src *gamedata.Source) (Generator, error) {
	table, err := src.Table(Tools.Stem())
	if err != nil {
		return nil, err
	}
	if err := table.LookupFields(toolFields...); err != nil {
		return nil, err
	}
	return &toolGenerator{base: base{category: Tools}, table: table}, nil
}

func (g *toolGenerator) Rows() []gamedata.Row {
	var rows []gamedata.Row
	for _, row := range g.table.Rows() {
		if !namedReleased(row) || row.Int("goodsType") != goodsTypeNormal {
			continue
		}
		if inSpiritAshRange(row.ID) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func (g *toolGenerator) Construct(row gamedata.Row) map[string]any {
	return map[string]any{
		"id":         row.ID,
		"name":       row.Name,
		"icon":       row.Int("iconId"),
		"price_sold": row.Int("sellValue"),
		"rarity":     row.Int("rarity"),
		"max_held":   row.Int("maxNum"),
	}
}
