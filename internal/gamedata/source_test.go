package gamedata

import (
	"os"
	"path/filepath"
	"testing"

	"erdb/internal/gameversion"
)

func writeTable(t *testing.T, root, version, stem, contents string) {
	t.Helper()
	dir := filepath.Join(root, version, "params")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating params dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, stem+".csv"), []byte(contents), 0o600); err != nil {
		t.Fatalf("writing table: %v", err)
	}
}

func testSource(t *testing.T, root string) *Source {
	t.Helper()
	v, err := gameversion.Parse("1.04.1")
	if err != nil {
		t.Fatalf("parsing version: %v", err)
	}
	return NewSource(root, v)
}

func TestSourceTable(t *testing.T) {
	t.Run("loads and caches", func(t *testing.T) {
		root := t.TempDir()
		writeTable(t, root, "1.04.1", "EquipParamWeapon", "ID,Name,weight\n1000000,Dagger,1.5\n")
		src := testSource(t, root)

		first, err := src.Table("EquipParamWeapon")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		second, err := src.Table("EquipParamWeapon")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if first != second {
			t.Fatalf("expected cached table on second load")
		}
	})

	t.Run("missing table errors", func(t *testing.T) {
		src := testSource(t, t.TempDir())
		if _, err := src.Table("EquipParamWeapon"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestFindValues(t *testing.T) {
	root := t.TempDir()
	writeTable(t, root, "1.04.1", "EquipParamWeapon",
		"ID,Name,wepType\n"+
			"1000000,Dagger,1\n"+
			"1010000,Parrying Dagger,1\n"+
			"1020000,Misericorde,1\n"+
			"2000000,Longsword,3\n"+
			"9999999,,10\n")
	src := testSource(t, root)

	t.Run("groups and sorts numerically", func(t *testing.T) {
		groups, err := src.FindValues("EquipParamWeapon", "wepType", -1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(groups) != 3 {
			t.Fatalf("expected 3 groups, got %d", len(groups))
		}
		if groups[0].Value != "1" || groups[1].Value != "3" || groups[2].Value != "10" {
			t.Fatalf("expected numeric order, got %v %v %v", groups[0].Value, groups[1].Value, groups[2].Value)
		}
		if groups[0].Total != 3 || len(groups[0].Examples) != 3 {
			t.Fatalf("expected 3 daggers, got total %d examples %d", groups[0].Total, len(groups[0].Examples))
		}
		if groups[2].Total != 1 || len(groups[2].Examples) != 0 {
			t.Fatalf("expected unnamed row counted without example, got total %d examples %d", groups[2].Total, len(groups[2].Examples))
		}
	})

	t.Run("limit caps examples", func(t *testing.T) {
		groups, err := src.FindValues("EquipParamWeapon", "wepType", 2)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := len(groups[0].Examples); got != 2 {
			t.Fatalf("expected 2 examples, got %d", got)
		}
		if groups[0].Total != 3 {
			t.Fatalf("expected total unaffected by limit, got %d", groups[0].Total)
		}
	})

	t.Run("unknown field errors", func(t *testing.T) {
		if _, err := src.FindValues("EquipParamWeapon", "missing", -1); err == nil {
			t.Fatalf("expected error")
		}
	})
}
