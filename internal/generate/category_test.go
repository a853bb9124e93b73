package generate

import (
	"testing"
)

func TestCategoryNames(t *testing.T) {
	cases := []struct {
		category Category
		stem     string
		title    string
		element  string
	}{
		{Armaments, "EquipParamWeapon", "Armaments", "Armaments"},
		{AshesOfWar, "EquipParamGem", "Ashes Of War", "AshesOfWar"},
		{CorrectionAttack, "AttackElementCorrectParam", "Correction Attack", "CorrectionAttack"},
		{SpiritAshes, "EquipParamGoods", "Spirit Ashes", "SpiritAshes"},
		{Talismans, "EquipParamAccessory", "Talismans", "Talismans"},
	}

	for _, tc := range cases {
		if got := tc.category.Stem(); got != tc.stem {
			t.Errorf("%s: expected stem %q, got %q", tc.category, tc.stem, got)
		}
		if got := tc.category.Title(); got != tc.title {
			t.Errorf("%s: expected title %q, got %q", tc.category, tc.title, got)
		}
		if got := tc.category.ElementName(); got != tc.element {
			t.Errorf("%s: expected element %q, got %q", tc.category, tc.element, got)
		}
	}

	if got := AshesOfWar.OutputFile(); got != "ashes-of-war.json" {
		t.Errorf("expected output file, got %q", got)
	}
	if got := AshesOfWar.SchemaFile(); got != "ashes-of-war.schema.json" {
		t.Errorf("expected schema file, got %q", got)
	}
}

func TestEveryCategoryHasStemAndConstructor(t *testing.T) {
	for _, c := range All() {
		if c.Stem() == "" {
			t.Errorf("%s has no stem", c)
		}
		if _, ok := constructors[c]; !ok {
			t.Errorf("%s has no constructor", c)
		}
	}
	if len(constructors) != len(All()) {
		t.Errorf("expected %d constructors, got %d", len(All()), len(constructors))
	}
}

func TestParseCategories(t *testing.T) {
	t.Run("single category", func(t *testing.T) {
		got, err := ParseCategories([]string{"armor"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != 1 || got[0] != Armor {
			t.Fatalf("expected [armor], got %v", got)
		}
	})

	t.Run("all expands", func(t *testing.T) {
		got, err := ParseCategories([]string{"all"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != len(All()) {
			t.Fatalf("expected %d categories, got %d", len(All()), len(got))
		}
	})

	t.Run("dedupes and keeps generation order", func(t *testing.T) {
		got, err := ParseCategories([]string{"talismans", "armor", "talismans"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != 2 || got[0] != Armor || got[1] != Talismans {
			t.Fatalf("expected [armor talismans], got %v", got)
		}
	})

	t.Run("unknown category errors", func(t *testing.T) {
		if _, err := ParseCategories([]string{"weapons"}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("empty errors", func(t *testing.T) {
		if _, err := ParseCategories(nil); err == nil {
			t.Fatalf("expected error")
		}
	})
}
