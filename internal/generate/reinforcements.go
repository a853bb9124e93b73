package generate

import (
	"strconv"

	"erdb/internal/gamedata"
)

// maxReinforceLevel caps the level offsets gathered under a base row.
const maxReinforceLevel = 25

var reinforcementFields = []string{
	"physicsAtkRate", "magicAtkRate", "fireAtkRate", "thunderAtkRate", "darkAtkRate",
	"correctStrengthRate", "correctAgilityRate", "correctMagicRate", "correctFaithRate", "correctLuckRate",
	"staminaGuardDefRate",
}

type reinforcementGenerator struct {
	base
	table *gamedata.Table
}

func newReinforcements(src *gamedata.Source) (Generator, error) {
	table, err := src.Table(Reinforcements.Stem())
	if err != nil {
		return nil, err
	}
	if err := table.LookupFields(reinforcementFields...); err != nil {
		return nil, err
	}
	return &reinforcementGenerator{base: base{category: Reinforcements}, table: table}, nil
}

// Rows keeps base rows only; the level rows at +1..+25 offsets fold
// into their base entry during Construct.
func (g *reinforcementGenerator) Rows() []gamedata.Row {
	var rows []gamedata.Row
	for _, row := range g.table.Rows() {
		if row.ID%100 == 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

func (g *reinforcementGenerator) KeyName(row gamedata.Row) string {
	return strconv.Itoa(row.ID)
}

func (g *reinforcementGenerator) Construct(row gamedata.Row) map[string]any {
	levels := make([]any, 0, maxReinforceLevel+1)
	for offset := 0; offset <= maxReinforceLevel; offset++ {
		level, ok := g.table.RowByID(row.ID + offset)
		if !ok {
			break
		}
		levels = append(levels, map[string]any{
			"level": offset,
			"attack": map[string]any{
				"physical":  level.Float("physicsAtkRate"),
				"magic":     level.Float("magicAtkRate"),
				"fire":      level.Float("fireAtkRate"),
				"lightning": level.Float("thunderAtkRate"),
				"holy":      level.Float("darkAtkRate"),
			},
			"scaling": map[string]any{
				"strength":     level.Float("correctStrengthRate"),
				"dexterity":    level.Float("correctAgilityRate"),
				"intelligence": level.Float("correctMagicRate"),
				"faith":        level.Float("correctFaithRate"),
				"arcane":       level.Float("correctLuckRate"),
			},
			"guard_boost": level.Float("staminaGuardDefRate"),
		})
	}

	return map[string]any{
		"id":     row.ID,
		"levels": levels,
	}
}
