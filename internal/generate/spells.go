package generate

import (
	"erdb/internal/gamedata"
)

// goodsType codes distinguishing the two spell schools.
const (
	goodsTypeSorcery     = 5
	goodsTypeIncantation = 16
)

var spellGoodsFields = []string{
	"goodsType", "iconId", "sellValue", "rarity", "sortId",
}

var spellMagicFields = []string{
	"mp", "stamina", "slotLength",
	"requirementIntellect", "requirementFaith", "requirementLuck",
}

type spellGenerator struct {
	base
	goods *gamedata.Table
	magic *gamedata.Table
}

// newSpells joins EquipParamGoods with the Magic support table; costs,
// slots and requirements live on the Magic row sharing the goods id.
func newSpells(src *gamedata.Source) (Generator, error) {
	goods, err := src.Table(Spells.Stem())
	if err != nil {
		return nil, err
	}
	if err := goods.LookupFields(spellGoodsFields...); err != nil {
		return nil, err
	}

	magic, err := src.Table("Magic")
	if err != nil {
		return nil, err
	}
	if err := magic.LookupFields(spellMagicFields...); err != nil {
		return nil, err
	}

	return &spellGenerator{base: base{category: Spells}, goods: goods, magic: magic}, nil
}

func spellType(row gamedata.Row) string {
	switch row.Int("goodsType") {
	case goodsTypeSorcery:
		return "sorcery"
	case goodsTypeIncantation:
		return "incantation"
	}
	return ""
}

func (g *spellGenerator) Rows() []gamedata.Row {
	var rows []gamedata.Row
	for _, row := range g.goods.Rows() {
		if !namedReleased(row) || spellType(row) == "" {
			continue
		}
		if _, ok := g.magic.RowByID(row.ID); !ok {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func (g *spellGenerator) Construct(row gamedata.Row) map[string]any {
	magic, _ := g.magic.RowByID(row.ID)

	return map[string]any{
		"id":           row.ID,
		"name":         row.Name,
		"type":         spellType(row),
		"icon":         row.Int("iconId"),
		"price_sold":   row.Int("sellValue"),
		"rarity":       row.Int("rarity"),
		"fp_cost":      magic.Int("mp"),
		"stamina_cost": magic.Int("stamina"),
		"slots":        magic.Int("slotLength"),
		"requirements": map[string]any{
			"intelligence": magic.Int("requirementIntellect"),
			"faith":        magic.Int("requirementFaith"),
			"arcane":       magic.Int("requirementLuck"),
		},
	}
}
