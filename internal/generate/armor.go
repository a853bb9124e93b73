package generate

import (
	"math"

	"erdb/internal/gamedata"
)

var armorFields = []string{
	"weight", "rarity", "iconIdM", "sellValue", "sortId",
	"headEquip", "bodyEquip", "armEquip", "legEquip",
	"neutralDamageCutRate", "blowDamageCutRate", "slashDamageCutRate", "thrustDamageCutRate",
	"magicDamageCutRate", "fireDamageCutRate", "thunderDamageCutRate", "darkDamageCutRate",
	"resistPoison", "resistBlood", "resistSleep", "resistCurse",
	"toughnessCorrectRate",
}

type armorGenerator struct {
	base
	table *gamedata.Table
}

func newArmor(src *gamedata.Source) (Generator, error) {
	table, err := src.Table(Armor.Stem())
	if err != nil {
		return nil, err
	}
	if err := table.LookupFields(armorFields...); err != nil {
		return nil, err
	}
	return &armorGenerator{base: base{category: Armor}, table: table}, nil
}

func (g *armorGenerator) Rows() []gamedata.Row {
	var rows []gamedata.Row
	for _, row := range g.table.Rows() {
		if namedReleased(row) && armorSlot(row) != "" {
			rows = append(rows, row)
		}
	}
	return rows
}

func armorSlot(row gamedata.Row) string {
	switch {
	case row.Bool("headEquip"):
		return "head"
	case row.Bool("bodyEquip"):
		return "body"
	case row.Bool("armEquip"):
		return "arms"
	case row.Bool("legEquip"):
		return "legs"
	}
	return ""
}

// absorption converts a damage cut rate into the negation percentage
// shown in game, e.g. a 0.88 cut rate absorbs 12%.
func absorption(row gamedata.Row, field string) float64 {
	return math.Round((1-row.Float(field))*100*100) / 100
}

func (g *armorGenerator) Construct(row gamedata.Row) map[string]any {
	return map[string]any{
		"id":         row.ID,
		"name":       row.Name,
		"slot":       armorSlot(row),
		"weight":     row.Float("weight"),
		"rarity":     row.Int("rarity"),
		"icon":       row.Int("iconIdM"),
		"price_sold": row.Int("sellValue"),
		"absorptions": map[string]any{
			"physical":  absorption(row, "neutralDamageCutRate"),
			"strike":    absorption(row, "blowDamageCutRate"),
			"slash":     absorption(row, "slashDamageCutRate"),
			"pierce":    absorption(row, "thrustDamageCutRate"),
			"magic":     absorption(row, "magicDamageCutRate"),
			"fire":      absorption(row, "fireDamageCutRate"),
			"lightning": absorption(row, "thunderDamageCutRate"),
			"holy":      absorption(row, "darkDamageCutRate"),
		},
		"resistances": map[string]any{
			"immunity":   row.Int("resistPoison"),
			"robustness": row.Int("resistBlood"),
			"focus":      row.Int("resistSleep"),
			"vitality":   row.Int("resistCurse"),
			"poise":      int(math.Round(row.Float("toughnessCorrectRate") * 1000)),
		},
	}
}

func (g *armorGenerator) RequiresPatching() bool { return true }

func (g *armorGenerator) Renames() map[string]string {
	return map[string]string{"priceSold": "price_sold"}
}
