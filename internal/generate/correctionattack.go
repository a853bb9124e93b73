package generate

import (
	"strconv"

	"erdb/internal/gamedata"
)

var correctionAttributes = []struct {
	field string
	name  string
}{
	{"Strength", "strength"},
	{"Agility", "dexterity"},
	{"Magic", "intelligence"},
	{"Faith", "faith"},
	{"Luck", "arcane"},
}

var correctionDamageTypes = []struct {
	field string
	name  string
}{
	{"Physics", "physical"},
	{"Magic", "magic"},
	{"Fire", "fire"},
	{"Thunder", "lightning"},
	{"Dark", "holy"},
}

func correctionAttackFields() []string {
	var fields []string
	for _, damage := range correctionDamageTypes {
		for _, attr := range correctionAttributes {
			fields = append(fields,
				"is"+attr.field+"CorrectBy"+damage.field,
				"overwrite"+attr.field+"CorrectRateBy"+damage.field,
			)
		}
	}
	return fields
}

type correctionAttackGenerator struct {
	base
	table *gamedata.Table
}

func newCorrectionAttack(src *gamedata.Source) (Generator, error) {
	table, err := src.Table(CorrectionAttack.Stem())
	if err != nil {
		return nil, err
	}
	if err := table.LookupFields(correctionAttackFields()...); err != nil {
		return nil, err
	}
	return &correctionAttackGenerator{base: base{category: CorrectionAttack}, table: table}, nil
}

// Rows keeps everything; correction rows are unnamed and referenced by
// id from armament entries.
func (g *correctionAttackGenerator) Rows() []gamedata.Row {
	return g.table.Rows()
}

func (g *correctionAttackGenerator) KeyName(row gamedata.Row) string {
	return strconv.Itoa(row.ID)
}

func (g *correctionAttackGenerator) Construct(row gamedata.Row) map[string]any {
	correct := make(map[string]any, len(correctionDamageTypes))
	overwrite := make(map[string]any)
	for _, damage := range correctionDamageTypes {
		attrs := make(map[string]any, len(correctionAttributes))
		rates := make(map[string]any)
		for _, attr := range correctionAttributes {
			attrs[attr.name] = row.Bool("is" + attr.field + "CorrectBy" + damage.field)
			// A negative rate means no override for this pairing.
			if rate := row.Float("overwrite" + attr.field + "CorrectRateBy" + damage.field); rate >= 0 {
				rates[attr.name] = rate
			}
		}
		correct[damage.name] = attrs
		if len(rates) > 0 {
			overwrite[damage.name] = rates
		}
	}

	obj := map[string]any{
		"id":      row.ID,
		"correct": correct,
	}
	if len(overwrite) > 0 {
		obj["overwrite"] = overwrite
	}
	return obj
}
