package generate

import (
	"fmt"
	"strings"
)

// Category selects one generated item database and the param table
// backing it.
type Category string

const (
	Armaments        Category = "armaments"
	Armor            Category = "armor"
	AshesOfWar       Category = "ashes-of-war"
	CorrectionAttack Category = "correction-attack"
	CorrectionGraph  Category = "correction-graph"
	Reinforcements   Category = "reinforcements"
	SpiritAshes      Category = "spirit-ashes"
	Spells           Category = "spells"
	Talismans        Category = "talismans"
	Tools            Category = "tools"
)

// All lists every category in generation order.
func All() []Category {
	return []Category{
		Armaments,
		Armor,
		AshesOfWar,
		CorrectionAttack,
		CorrectionGraph,
		Reinforcements,
		SpiritAshes,
		Spells,
		Talismans,
		Tools,
	}
}

var stems = map[Category]string{
	Armaments:        "EquipParamWeapon",
	Armor:            "EquipParamProtector",
	AshesOfWar:       "EquipParamGem",
	CorrectionAttack: "AttackElementCorrectParam",
	CorrectionGraph:  "CalcCorrectGraph",
	Reinforcements:   "ReinforceParamWeapon",
	SpiritAshes:      "EquipParamGoods",
	Spells:           "EquipParamGoods",
	Talismans:        "EquipParamAccessory",
	Tools:            "EquipParamGoods",
}

func (c Category) String() string {
	return string(c)
}

// Stem names the main param table the category is generated from.
func (c Category) Stem() string {
	return stems[c]
}

// Title renders the category for display, e.g. "Ashes Of War".
func (c Category) Title() string {
	words := strings.Split(string(c), "-")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

// ElementName is the top-level key of the generated document,
// e.g. "AshesOfWar".
func (c Category) ElementName() string {
	return strings.ReplaceAll(c.Title(), " ", "")
}

func (c Category) OutputFile() string {
	return string(c) + ".json"
}

func (c Category) SchemaFile() string {
	return string(c) + ".schema.json"
}

func ParseCategory(s string) (Category, error) {
	for _, c := range All() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// ParseCategories resolves command arguments into a deduplicated list in
// generation order. The literal "all" expands to every category.
func ParseCategories(args []string) ([]Category, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no categories given")
	}

	picked := make(map[Category]struct{})
	for _, arg := range args {
		if arg == "all" {
			for _, c := range All() {
				picked[c] = struct{}{}
			}
			continue
		}
		c, err := ParseCategory(arg)
		if err != nil {
			return nil, err
		}
		picked[c] = struct{}{}
	}

	out := make([]Category, 0, len(picked))
	for _, c := range All() {
		if _, ok := picked[c]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}
