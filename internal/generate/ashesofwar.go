package generate

import (
	"fmt"

	"erdb/internal/gamedata"
)

var ashMountCategories = []struct {
	field string
	name  string
}{
	{"canMountDagger", "Dagger"},
	{"canMountStraightSword", "Straight Sword"},
	{"canMountGreatsword", "Greatsword"},
	{"canMountCurvedSword", "Curved Sword"},
	{"canMountKatana", "Katana"},
	{"canMountAxe", "Axe"},
	{"canMountHammer", "Hammer"},
	{"canMountSpear", "Spear"},
	{"canMountHalberd", "Halberd"},
	{"canMountFist", "Fist"},
	{"canMountShield", "Shield"},
}

// ashAffinities is indexed by the wepAttr codes of the export.
var ashAffinities = []string{
	"Standard", "Heavy", "Keen", "Quality", "Fire", "Flame Art",
	"Lightning", "Sacred", "Magic", "Cold", "Poison", "Blood", "Occult",
}

func ashFields() []string {
	fields := []string{"swordArtsParamId", "defaultWepAttr", "sortId"}
	for i := range ashAffinities {
		fields = append(fields, fmt.Sprintf("configurableWepAttr%02d", i))
	}
	for _, mount := range ashMountCategories {
		fields = append(fields, mount.field)
	}
	return fields
}

type ashOfWarGenerator struct {
	base
	table *gamedata.Table
}

func newAshesOfWar(src *gamedata.Source) (Generator, error) {
	table, err := src.Table(AshesOfWar.Stem())
	if err != nil {
		return nil, err
	}
	if err := table.LookupFields(ashFields()...); err != nil {
		return nil, err
	}
	return &ashOfWarGenerator{base: base{category: AshesOfWar}, table: table}, nil
}

func (g *ashOfWarGenerator) Rows() []gamedata.Row {
	var rows []gamedata.Row
	for _, row := range g.table.Rows() {
		if namedReleased(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

func (g *ashOfWarGenerator) Construct(row gamedata.Row) map[string]any {
	defaultAffinity := "Standard"
	if code := row.Int("defaultWepAttr"); code >= 0 && code < len(ashAffinities) {
		defaultAffinity = ashAffinities[code]
	}

	possible := make([]any, 0, len(ashAffinities))
	for i, name := range ashAffinities {
		if row.Bool(fmt.Sprintf("configurableWepAttr%02d", i)) {
			possible = append(possible, name)
		}
	}

	categories := make([]any, 0, len(ashMountCategories))
	for _, mount := range ashMountCategories {
		if row.Bool(mount.field) {
			categories = append(categories, mount.name)
		}
	}

	return map[string]any{
		"id":                  row.ID,
		"name":                row.Name,
		"skill_id":            row.Int("swordArtsParamId"),
		"default_affinity":    defaultAffinity,
		"possible_affinities": possible,
		"armament_categories": categories,
	}
}
