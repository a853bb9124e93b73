package gamedata

import (
	"fmt"
	"os"
	"path/filepath"

	"erdb/internal/gameversion"
)

// Source is a read-only view over the param tables exported for one game
// version, found under <root>/<version>/params/<Stem>.csv. Tables load
// lazily and are cached for the lifetime of the Source.
type Source struct {
	root    string
	version gameversion.GameVersion
	tables  map[string]*Table
}

func NewSource(root string, version gameversion.GameVersion) *Source {
	return &Source{
		root:    root,
		version: version,
		tables:  make(map[string]*Table),
	}
}

func (s *Source) Version() gameversion.GameVersion {
	return s.version
}

func (s *Source) ParamsDir() string {
	return filepath.Join(s.root, s.version.String(), "params")
}

// Table loads the param table with the given stem, reusing a previous
// load when available.
func (s *Source) Table(stem string) (*Table, error) {
	if t, ok := s.tables[stem]; ok {
		return t, nil
	}

	path := filepath.Join(s.ParamsDir(), stem+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading param table %s: %w", stem, err)
	}
	defer f.Close()

	t, err := readTable(stem, f)
	if err != nil {
		return nil, fmt.Errorf("loading param table %s: %w", stem, err)
	}

	s.tables[stem] = t
	return t, nil
}
