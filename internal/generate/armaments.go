package generate

import (
	"erdb/internal/gamedata"
)

// armamentClasses maps wepType codes to display classes. Codes missing
// from the table fall back to "Unknown" rather than failing the run.
var armamentClasses = map[int]string{
	1:  "Dagger",
	3:  "Straight Sword",
	5:  "Greatsword",
	7:  "Colossal Sword",
	9:  "Curved Sword",
	11: "Curved Greatsword",
	13: "Katana",
	14: "Twinblade",
	15: "Thrusting Sword",
	16: "Heavy Thrusting Sword",
	17: "Axe",
	19: "Greataxe",
	21: "Hammer",
	23: "Great Hammer",
	24: "Flail",
	25: "Spear",
	28: "Great Spear",
	29: "Halberd",
	31: "Reaper",
	35: "Fist",
	37: "Claw",
	39: "Whip",
	41: "Colossal Weapon",
	50: "Light Bow",
	51: "Bow",
	53: "Greatbow",
	55: "Crossbow",
	56: "Ballista",
	57: "Glintstone Staff",
	61: "Sacred Seal",
	65: "Small Shield",
	67: "Medium Shield",
	69: "Greatshield",
	87: "Torch",
}

var armamentFields = []string{
	"wepType", "weight", "rarity", "iconId", "sellValue", "sortId",
	"attackBasePhysics", "attackBaseMagic", "attackBaseFire", "attackBaseThunder", "attackBaseDark", "attackBaseStamina",
	"correctStrength", "correctAgility", "correctMagic", "correctFaith", "correctLuck",
	"properStrength", "properAgility", "properMagic", "properFaith", "properLuck",
	"physGuardCutRate", "magGuardCutRate", "fireGuardCutRate", "thunGuardCutRate", "darkGuardCutRate", "staminaGuardDef",
	"reinforceTypeId", "attackElementCorrectId", "isEnhance", "gemMountType",
}

type armamentGenerator struct {
	base
	table *gamedata.Table
}

func newArmaments(src *gamedata.Source) (Generator, error) {
	table, err := src.Table(Armaments.Stem())
	if err != nil {
		return nil, err
	}
	if err := table.LookupFields(armamentFields...); err != nil {
		return nil, err
	}
	return &armamentGenerator{base: base{category: Armaments}, table: table}, nil
}

// Rows keeps base weapons only; infused variants live at id offsets
// below 10000 and collapse into their base entry.
func (g *armamentGenerator) Rows() []gamedata.Row {
	var rows []gamedata.Row
	for _, row := range g.table.Rows() {
		if row.ID%10000 == 0 && namedReleased(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

func (g *armamentGenerator) Construct(row gamedata.Row) map[string]any {
	class, ok := armamentClasses[row.Int("wepType")]
	if !ok {
		class = "Unknown"
	}

	return map[string]any{
		"id":         row.ID,
		"name":       row.Name,
		"category":   class,
		"weight":     row.Float("weight"),
		"rarity":     row.Int("rarity"),
		"icon":       row.Int("iconId"),
		"price_sold": row.Int("sellValue"),
		"attack": map[string]any{
			"physical":  row.Int("attackBasePhysics"),
			"magic":     row.Int("attackBaseMagic"),
			"fire":      row.Int("attackBaseFire"),
			"lightning": row.Int("attackBaseThunder"),
			"holy":      row.Int("attackBaseDark"),
			"stamina":   row.Int("attackBaseStamina"),
		},
		"scaling": map[string]any{
			"strength":     float64(row.Int("correctStrength")) / 100,
			"dexterity":    float64(row.Int("correctAgility")) / 100,
			"intelligence": float64(row.Int("correctMagic")) / 100,
			"faith":        float64(row.Int("correctFaith")) / 100,
			"arcane":       float64(row.Int("correctLuck")) / 100,
		},
		"requirements": map[string]any{
			"strength":     row.Int("properStrength"),
			"dexterity":    row.Int("properAgility"),
			"intelligence": row.Int("properMagic"),
			"faith":        row.Int("properFaith"),
			"arcane":       row.Int("properLuck"),
		},
		"guard": map[string]any{
			"physical":    row.Float("physGuardCutRate"),
			"magic":       row.Float("magGuardCutRate"),
			"fire":        row.Float("fireGuardCutRate"),
			"lightning":   row.Float("thunGuardCutRate"),
			"holy":        row.Float("darkGuardCutRate"),
			"guard_boost": row.Float("staminaGuardDef"),
		},
		"reinforcement_id":     row.Int("reinforceTypeId"),
		"correction_attack_id": row.Int("attackElementCorrectId"),
		"is_buffable":          row.Bool("isEnhance"),
		"allow_ash_of_war":     row.Int("gemMountType") == 2,
	}
}

func (g *armamentGenerator) RequiresPatching() bool { return true }

func (g *armamentGenerator) Renames() map[string]string {
	return map[string]string{
		"priceSold":     "price_sold",
		"isBuffable":    "is_buffable",
		"allowAshOfWar": "allow_ash_of_war",
	}
}
