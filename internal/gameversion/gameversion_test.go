package gameversion

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("dotted numeric parses", func(t *testing.T) {
		v, err := Parse("1.04.1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if v.String() != "1.04.1" {
			t.Fatalf("expected round trip, got %q", v.String())
		}
	})

	t.Run("leading zeros survive", func(t *testing.T) {
		v, err := Parse("1.09.0")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if v.String() != "1.09.0" {
			t.Fatalf("expected %q, got %q", "1.09.0", v.String())
		}
	})

	t.Run("rejects empty", func(t *testing.T) {
		if _, err := Parse(""); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("rejects non numeric segments", func(t *testing.T) {
		for _, s := range []string{"abc", "1.x.2", "1..2", "1.2-rc1", " 1.2", "1. 2"} {
			if _, err := Parse(s); err == nil {
				t.Fatalf("expected error for %q", s)
			}
		}
	})
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.04.1", "1.04.1", 0},
		{"1.04.1", "1.05.0", -1},
		{"1.10.0", "1.9.0", 1},
		{"1.04", "1.04.0", 0},
		{"1.04", "1.04.1", -1},
		{"2.00.0", "1.99.9", 1},
	}

	for _, tc := range cases {
		a, err := Parse(tc.a)
		if err != nil {
			t.Fatalf("parsing %q: %v", tc.a, err)
		}
		b, err := Parse(tc.b)
		if err != nil {
			t.Fatalf("parsing %q: %v", tc.b, err)
		}
		if got := a.Compare(b); got != tc.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDiscover(t *testing.T) {
	t.Run("sorts newest first and skips noise", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"1.04.1", "1.10.0", "1.02.3", "_Extracted", "notes"} {
			if err := os.Mkdir(filepath.Join(dir, name), 0o755); err != nil {
				t.Fatalf("creating %s: %v", name, err)
			}
		}
		if err := os.WriteFile(filepath.Join(dir, "1.99.9"), nil, 0o600); err != nil {
			t.Fatalf("creating file: %v", err)
		}

		versions, err := Discover(dir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		got := make([]string, 0, len(versions))
		for _, v := range versions {
			got = append(got, v.String())
		}
		want := []string{"1.10.0", "1.04.1", "1.02.3"}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	})

	t.Run("missing directory errors", func(t *testing.T) {
		if _, err := Discover(filepath.Join(t.TempDir(), "missing")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("latest picks newest", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"1.04.1", "1.10.0"} {
			if err := os.Mkdir(filepath.Join(dir, name), 0o755); err != nil {
				t.Fatalf("creating %s: %v", name, err)
			}
		}
		v, err := Latest(dir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if v.String() != "1.10.0" {
			t.Fatalf("expected 1.10.0, got %q", v.String())
		}
	})

	t.Run("latest errors when empty", func(t *testing.T) {
		if _, err := Latest(t.TempDir()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
